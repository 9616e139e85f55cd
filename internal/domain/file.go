package domain

import "strconv"

// Size — размер файла в двух представлениях, как его отдаёт API.
type Size struct {
	// Raw — размер в байтах.
	Raw int64 `json:"raw"`

	// HumanReadable — готовая строка вида "4 KiB".
	// Может быть пустой: не все версии API заполняют это поле.
	HumanReadable string `json:"human_readable"`
}

// Display возвращает строку размера для вывода.
// При humanReadable=false — просто число байт. При true используется
// HumanReadable из ответа сервера, а при пустом поле размер
// форматируется локально через HumanSize.
func (s Size) Display(humanReadable bool) string {
	if !humanReadable {
		return strconv.FormatInt(s.Raw, 10)
	}
	if s.HumanReadable != "" {
		return s.HumanReadable
	}
	return HumanSize(s.Raw)
}

// FileRecord — один файл workspace из listing API.
//
// Запись неизменяема: создаётся при разборе ответа сервера и живёт
// до рендеринга. Порядок записей задаёт сервер, клиент его не меняет.
type FileRecord struct {
	// Name — путь файла внутри workspace, разделитель всегда "/".
	Name string `json:"name"`

	// LastModified — время последнего изменения, ISO-8601.
	LastModified string `json:"last-modified"`

	// Size — размер файла.
	Size Size `json:"size"`
}
