package domain

import "fmt"

// sizeUnits — единицы измерения размера, шаг 1024.
// Формат совпадает с полем human_readable в ответах API.
var sizeUnits = []string{"Bytes", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// HumanSize форматирует число байт в человекочитаемую строку:
// 20 → "20 Bytes", 4096 → "4 KiB". Дробная часть отбрасывается
// округлением, как это делает сервер.
func HumanSize(size int64) string {
	value := float64(size)
	for _, unit := range sizeUnits[:len(sizeUnits)-1] {
		if value < 1024 {
			return fmt.Sprintf("%.0f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.0f %s", value, sizeUnits[len(sizeUnits)-1])
}
