package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode определяет набор допустимых ключей фильтра.
type Mode int

const (
	// ModeFiles — листинг файлов: name, size, last-modified.
	ModeFiles Mode = iota

	// ModeDiskUsage — отчёт disk usage: name, size.
	// Записи du не несут времени модификации.
	ModeDiskUsage
)

// Ключи фильтра.
const (
	KeyName         = "name"
	KeySize         = "size"
	KeyLastModified = "last-modified"
)

// modeKeys — допустимые ключи по режимам, в порядке вывода в сообщениях.
var modeKeys = map[Mode][]string{
	ModeFiles:     {KeyName, KeySize, KeyLastModified},
	ModeDiskUsage: {KeyName, KeySize},
}

func keyAllowed(mode Mode, key string) bool {
	for _, k := range modeKeys[mode] {
		if k == key {
			return true
		}
	}
	return false
}

// Spec — разобранное выражение фильтра: ключ → накопленные допустимые
// значения. Повторение ключа добавляет значение (OR внутри ключа,
// AND между ключами). После построения Spec не изменяется.
type Spec struct {
	values map[string][]string
}

// Parse разбирает токены key=value в Spec для заданного режима.
//
// Правила:
//   - токен обязан содержать "=", иначе ErrInvalidFilterFormat
//   - ключ должен входить в набор режима, иначе ErrUnsupportedFilterKey
//   - значения size обязаны быть неотрицательными целыми
//   - повторённый ключ накапливает значения, а не перезаписывает
//
// Пустой список токенов даёт пустой Spec, который пропускает всё.
func Parse(mode Mode, tokens []string) (*Spec, error) {
	spec := &Spec{values: make(map[string][]string)}

	for _, token := range tokens {
		parts := strings.SplitN(token, "=", 2)
		if len(parts) != 2 {
			return nil, NewParseError(token,
				fmt.Sprintf("invalid filter format %q, expected key=value", token),
				ErrInvalidFilterFormat)
		}

		key, value := parts[0], parts[1]
		if !keyAllowed(mode, key) {
			return nil, NewParseError(token,
				fmt.Sprintf("unsupported filter key %q, supported keys: %s",
					key, strings.Join(modeKeys[mode], ", ")),
				ErrUnsupportedFilterKey)
		}

		if key == KeySize {
			if n, err := strconv.ParseInt(value, 10, 64); err != nil || n < 0 {
				return nil, NewParseError(token,
					fmt.Sprintf("invalid size value %q, expected a non-negative integer", value),
					ErrInvalidSizeValue)
			}
		}

		spec.values[key] = append(spec.values[key], value)
	}

	return spec, nil
}

// Empty возвращает true, если ни один ключ не задан.
func (s *Spec) Empty() bool {
	return s == nil || len(s.values) == 0
}

// Values возвращает накопленные значения ключа.
// Для незаданного ключа возвращает nil.
func (s *Spec) Values(key string) []string {
	if s == nil {
		return nil
	}
	return s.values[key]
}
