package arenaapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SkipKindPricingRule вид пропущенной записи для правил, которые не удалось разобрать
const SkipKindPricingRule = "pricing_rule"

// CallObserver собирает метрики вызовов бэкенда и пропущенных записей
type CallObserver interface {
	ObserveBackendCall(operation string, started time.Time, err error)
	SkippedRecord(kind string)
}
