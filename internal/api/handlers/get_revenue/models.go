package get_revenue

import (
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	getRevenue "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_revenue"
)

// RevenueResponse HTTP response model
type RevenueResponse struct {
	StoreID    string         `json:"storeId"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Total      int64          `json:"total"`
	OrderCount int            `json:"orderCount"`
	SlotCount  int            `json:"slotCount"`
	ByField    []FieldRevenue `json:"byField"`
	ByDay      []DayRevenue   `json:"byDay"`
}

// FieldRevenue выручка поля
type FieldRevenue struct {
	FieldID string `json:"fieldId"`
	Total   int64  `json:"total"`
	Slots   int    `json:"slots"`
}

// DayRevenue выручка за день
type DayRevenue struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
	Slots int    `json:"slots"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID, storeID, fromStr, toStr string) (*getRevenue.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &getRevenue.Request{
		UserID:  userID,
		StoreID: storeID,
		From:    from,
		To:      to,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRevenue.Response) *RevenueResponse {
	byField := make([]FieldRevenue, len(resp.ByField))
	for i, f := range resp.ByField {
		byField[i] = FieldRevenue{FieldID: f.FieldID, Total: f.Total, Slots: f.Slots}
	}

	byDay := make([]DayRevenue, len(resp.ByDay))
	for i, d := range resp.ByDay {
		byDay[i] = DayRevenue{Date: d.Date, Total: d.Total, Slots: d.Slots}
	}

	return &RevenueResponse{
		StoreID:    resp.StoreID,
		From:       resp.From.Format(domain.DateFormat),
		To:         resp.To.Format(domain.DateFormat),
		Total:      resp.Total,
		OrderCount: resp.OrderCount,
		SlotCount:  resp.SlotCount,
		ByField:    byField,
		ByDay:      byDay,
	}
}
