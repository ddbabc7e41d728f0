package get_revenue

import "time"

// MaxRangeDays максимальная длина периода отчета
const MaxRangeDays = 366

// Request модель запроса отчета о выручке
type Request struct {
	UserID  string
	StoreID string
	From    time.Time // включительно
	To      time.Time // включительно
}

// Response модель ответа с выручкой за период
type Response struct {
	StoreID    string
	From       time.Time
	To         time.Time
	Total      int64
	OrderCount int
	SlotCount  int
	ByField    []FieldRevenue // по убыванию выручки
	ByDay      []DayRevenue   // по возрастанию даты
}

// FieldRevenue выручка поля
type FieldRevenue struct {
	FieldID string
	Total   int64
	Slots   int
}

// DayRevenue выручка за день игры
type DayRevenue struct {
	Date  string // YYYY-MM-DD
	Total int64
	Slots int
}
