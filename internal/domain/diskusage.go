package domain

// DiskUsageRecord — агрегированный размер одного пути в workspace.
// В отличие от FileRecord не несёт времени модификации.
type DiskUsageRecord struct {
	// Name — путь внутри workspace.
	Name string `json:"name"`

	// Size — суммарный размер по этому пути.
	Size Size `json:"size"`
}

// DiskUsageReport — полный ответ disk_usage API.
type DiskUsageReport struct {
	// DiskUsageInfo — записи по путям в порядке сервера.
	DiskUsageInfo []DiskUsageRecord `json:"disk_usage_info"`

	// User — идентификатор владельца workspace.
	User string `json:"user"`

	// WorkflowID — идентификатор workflow run.
	WorkflowID string `json:"workflow_id"`

	// WorkflowName — имя run.
	WorkflowName string `json:"workflow_name"`
}
