package domain

// WorkflowStatus — статус workflow run, как его отдаёт API.
//
// Жизненный цикл:
//
//	created → queued → pending → running → finished
//	                                     ↘ failed
//	          (или) → stopped (остановлен пользователем)
//	deleted — run удалён вместе с workspace
type WorkflowStatus string

const (
	// WorkflowStatusCreated — run создан, но ещё не поставлен в очередь.
	WorkflowStatusCreated WorkflowStatus = "created"

	// WorkflowStatusQueued — run в очереди на выполнение.
	WorkflowStatusQueued WorkflowStatus = "queued"

	// WorkflowStatusPending — ресурсы выделяются, старт вот-вот.
	WorkflowStatusPending WorkflowStatus = "pending"

	// WorkflowStatusRunning — run выполняется, workspace занят.
	WorkflowStatusRunning WorkflowStatus = "running"

	// WorkflowStatusFinished — run успешно завершён.
	WorkflowStatusFinished WorkflowStatus = "finished"

	// WorkflowStatusFailed — run завершился с ошибкой.
	WorkflowStatusFailed WorkflowStatus = "failed"

	// WorkflowStatusStopped — run остановлен пользователем.
	WorkflowStatusStopped WorkflowStatus = "stopped"

	// WorkflowStatusDeleted — run удалён.
	WorkflowStatusDeleted WorkflowStatus = "deleted"
)

// StatusReport — ответ status API для одного workflow run.
type StatusReport struct {
	// Name — имя run.
	Name string `json:"name"`

	// Status — текущий статус.
	Status WorkflowStatus `json:"status"`

	// Logs — накопленные логи выполнения.
	Logs string `json:"logs"`
}
