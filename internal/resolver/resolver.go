package resolver

// Resolver вычисляет занятость и цену слотов.
// Результат зависит только от входных данных; логгер и счётчик нужны
// лишь для сообщений о пропущенных записях.
type Resolver struct {
	logger  Logger
	skipped SkipCounter
}

// New создает новый экземпляр резолвера. Оба аргумента могут быть nil.
func New(logger Logger, skipped SkipCounter) *Resolver {
	r := &Resolver{logger: logger, skipped: skipped}
	if r.logger == nil {
		r.logger = nopLogger{}
	}
	if r.skipped == nil {
		r.skipped = nopCounter{}
	}
	return r
}
