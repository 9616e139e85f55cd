// Package filter реализует клиентскую фильтрацию записей workspace.
//
// Включает:
//   - spec.go    — разбор выражений --filter key=value в Spec
//   - pattern.go — glob-шаблон имени (* внутри сегмента, ** через "/")
//   - engine.go  — применение Spec и Pattern к записям listing и du
//
// Фильтрация выполняется на клиенте поверх ответа сервера: порядок
// записей не меняется, записи только отбрасываются.
package filter
