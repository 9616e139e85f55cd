// Package telemetry обеспечивает наблюдаемость клиента.
//
// Включает:
//   - logging.go — structured logging через slog
//
// Логи пишутся в stderr, чтобы не смешиваться с данными команд
// в stdout. Обычные запуски ничего не логируют; LOG_LEVEL=DEBUG
// включает трассировку HTTP-запросов к кластеру.
package telemetry
