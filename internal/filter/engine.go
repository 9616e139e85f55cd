package filter

import (
	"strconv"
	"strings"

	"github.com/shaiso/automata-workspace/internal/domain"
)

// FilterFiles возвращает записи листинга, прошедшие шаблон имени и
// все ключи фильтра. Порядок сервера сохраняется. Результат всегда
// не-nil, чтобы пустой список сериализовался в JSON как [].
func FilterFiles(records []domain.FileRecord, pattern *Pattern, spec *Spec) []domain.FileRecord {
	result := make([]domain.FileRecord, 0, len(records))
	for _, rec := range records {
		if MatchesFile(rec, pattern, spec) {
			result = append(result, rec)
		}
	}
	return result
}

// FilterDiskUsage возвращает записи disk usage, прошедшие шаблон и фильтр.
func FilterDiskUsage(records []domain.DiskUsageRecord, pattern *Pattern, spec *Spec) []domain.DiskUsageRecord {
	result := make([]domain.DiskUsageRecord, 0, len(records))
	for _, rec := range records {
		if MatchesDiskUsage(rec, pattern, spec) {
			result = append(result, rec)
		}
	}
	return result
}

// MatchesFile проверяет одну запись листинга: запись проходит, если
// её путь принят шаблоном и для каждого ключа фильтра совпало хотя бы
// одно из накопленных значений.
func MatchesFile(rec domain.FileRecord, pattern *Pattern, spec *Spec) bool {
	if !pattern.Match(rec.Name) {
		return false
	}
	if spec == nil {
		return true
	}
	for key, accepted := range spec.values {
		if !matchKey(key, accepted, rec.Name, rec.LastModified, rec.Size.Raw) {
			return false
		}
	}
	return true
}

// MatchesDiskUsage проверяет одну запись disk usage.
func MatchesDiskUsage(rec domain.DiskUsageRecord, pattern *Pattern, spec *Spec) bool {
	if !pattern.Match(rec.Name) {
		return false
	}
	if spec == nil {
		return true
	}
	for key, accepted := range spec.values {
		if !matchKey(key, accepted, rec.Name, "", rec.Size.Raw) {
			return false
		}
	}
	return true
}

// matchKey применяет политику сопоставления одного ключа:
//   - name — подстрока пути, регистр значим
//   - size — точное числовое равенство с raw
//   - last-modified — подстрока ISO-метки, так что дата-префикс
//     вида 2021-06-14 совпадает с полной меткой времени
func matchKey(key string, accepted []string, name, lastModified string, sizeRaw int64) bool {
	switch key {
	case KeyName:
		return anySubstring(accepted, name)
	case KeySize:
		return anySizeEqual(accepted, sizeRaw)
	case KeyLastModified:
		return anySubstring(accepted, lastModified)
	default:
		return false
	}
}

func anySubstring(accepted []string, value string) bool {
	for _, v := range accepted {
		if strings.Contains(value, v) {
			return true
		}
	}
	return false
}

func anySizeEqual(accepted []string, raw int64) bool {
	for _, v := range accepted {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil && n == raw {
			return true
		}
	}
	return false
}
