package filter

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern — необязательный glob-шаблон имени файла.
// "*" покрывает символы внутри одного сегмента пути, "**" — любое
// число сегментов. Сопоставление идёт со строкой пути из ответа
// сервера, локальная файловая система не участвует. Регистр значим.
type Pattern struct {
	raw string
}

// NewPattern создаёт шаблон из позиционного аргумента команды.
// Пустая строка — шаблон, пропускающий любой путь.
func NewPattern(raw string) (*Pattern, error) {
	if raw != "" && !doublestar.ValidatePattern(raw) {
		return nil, NewParseError(raw,
			fmt.Sprintf("invalid name pattern %q", raw),
			ErrInvalidPattern)
	}
	return &Pattern{raw: raw}, nil
}

// Match сообщает, проходит ли путь шаблон.
// nil-шаблон и пустой шаблон пропускают всё.
func (p *Pattern) Match(path string) bool {
	if p == nil || p.raw == "" {
		return true
	}
	ok, _ := doublestar.Match(p.raw, path)
	return ok
}
