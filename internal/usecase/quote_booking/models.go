package quote_booking

import (
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/pkg/types"
)

// Request модель запроса расчета стоимости выбранных слотов
type Request struct {
	UserID     string
	StoreID    string
	Sport      string
	Date       time.Time
	Selections []Selection
}

// Selection выбранный слот
type Selection struct {
	FieldID string
	Time    types.TimeString
}

// Response модель ответа с ценами
type Response struct {
	StoreID string
	Date    time.Time
	Items   []Item
	Total   int64
	Stale   bool // цены посчитаны по последней известной сетке
}

// Item цена одного слота
type Item struct {
	FieldID   string
	FieldName string
	StartTime types.TimeString
	EndTime   types.TimeString
	Price     int64
	IsSpecial bool
}
