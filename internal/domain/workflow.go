package domain

import (
	"regexp"

	"github.com/google/uuid"
)

// workflowNameRe — имя run: имя workflow, опционально с номером
// запуска через точку ("analysis.3").
var workflowNameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*(\.[0-9]+)?$`)

// ValidWorkflowRef проверяет ссылку на workflow run.
// Допустимы две формы: UUID, выданный платформой, либо имя
// в виде name[.number].
func ValidWorkflowRef(ref string) bool {
	if _, err := uuid.Parse(ref); err == nil {
		return true
	}
	return workflowNameRe.MatchString(ref)
}
