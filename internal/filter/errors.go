package filter

import "errors"

// Ошибки разбора выражений фильтра.
var (
	// ErrInvalidFilterFormat — токен не содержит "=".
	ErrInvalidFilterFormat = errors.New("invalid filter format")

	// ErrUnsupportedFilterKey — ключ не входит в набор режима.
	ErrUnsupportedFilterKey = errors.New("unsupported filter key")

	// ErrInvalidSizeValue — значение size не является неотрицательным целым.
	ErrInvalidSizeValue = errors.New("invalid size value")

	// ErrInvalidPattern — glob-шаблон синтаксически некорректен.
	ErrInvalidPattern = errors.New("invalid name pattern")
)

// ParseError — ошибка разбора фильтра с контекстом.
type ParseError struct {
	Token   string // исходный токен, вызвавший ошибку
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError создаёт новую ошибку разбора.
func NewParseError(token, message string, err error) *ParseError {
	return &ParseError{
		Token:   token,
		Message: message,
		Err:     err,
	}
}
