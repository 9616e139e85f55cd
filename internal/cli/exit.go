package cli

import "fmt"

// ExitError — ошибка, несущая код завершения процесса.
// Команды возвращают её, когда сообщение пользователю уже напечатано
// через Output и main должен лишь выставить код без дублирования текста.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
