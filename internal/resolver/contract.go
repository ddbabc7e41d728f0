package resolver

// Logger интерфейс для логирования пропущенных записей
type Logger interface {
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// SkipCounter считает пропущенные некорректные записи (метрики)
type SkipCounter interface {
	SkippedRecord(kind string)
}

// Виды пропускаемых записей для метрик
const (
	SkipKindInterval    = "booked_interval"
	SkipKindPricingRule = "pricing_rule"
	SkipKindFieldHours  = "field_hours"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

type nopCounter struct{}

func (nopCounter) SkippedRecord(string) {}
