package domain

// DeletedEntry — метаданные успешно удалённого файла.
type DeletedEntry struct {
	// Size — размер удалённого файла в байтах.
	Size int64 `json:"size"`
}

// FailedEntry — причина, по которой файл удалить не удалось.
type FailedEntry struct {
	// Error — текст ошибки от сервера, показывается пользователю как есть.
	Error string `json:"error"`
}

// DeleteResult — результат удаления. Сервер разбивает запрошенные
// пути на два множества: удалённые и неудалённые. Пути, не совпавшие
// ни с одним файлом workspace, не попадают ни в одно из них.
type DeleteResult struct {
	// Deleted — путь → метаданные для успешно удалённых файлов.
	Deleted map[string]DeletedEntry `json:"deleted"`

	// Failed — путь → ошибка для файлов, которые удалить не вышло.
	Failed map[string]FailedEntry `json:"failed"`
}

// Empty возвращает true, если запрошенное имя не совпало ни с одним
// файлом workspace: оба множества пусты.
func (r DeleteResult) Empty() bool {
	return len(r.Deleted) == 0 && len(r.Failed) == 0
}

// FreedSize возвращает суммарный размер удалённых файлов в байтах.
func (r DeleteResult) FreedSize() int64 {
	var total int64
	for _, e := range r.Deleted {
		total += e.Size
	}
	return total
}
