package payment_events

// Refresher получает сигнал о завершенной оплате
type Refresher interface {
	PaymentCompleted()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
