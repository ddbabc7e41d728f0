package quote_booking

import (
	"fmt"
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	quoteBooking "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/quote_booking"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/types"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Date       string          `json:"date" validate:"required,datetime=2006-01-02"`
	Sport      string          `json:"sport"`
	Selections []SelectionBody `json:"selections" validate:"required,min=1,dive"`
}

// SelectionBody выбранный слот
type SelectionBody struct {
	FieldID string `json:"fieldId" validate:"required"`
	Time    string `json:"time" validate:"required,datetime=15:04"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	StoreID string      `json:"storeId"`
	Date    string      `json:"date"`
	Items   []QuoteItem `json:"items"`
	Total   int64       `json:"total"`
	Stale   bool        `json:"stale"`
}

// QuoteItem цена одного слота
type QuoteItem struct {
	FieldID   string `json:"fieldId"`
	FieldName string `json:"fieldName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Price     int64  `json:"price"`
	IsSpecial bool   `json:"isSpecial"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *QuoteRequest) ToUseCaseRequest(userID, storeID string) (*quoteBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	selections := make([]quoteBooking.Selection, len(r.Selections))
	for i, sel := range r.Selections {
		t, err := types.NewTimeStringFromString(sel.Time)
		if err != nil {
			return nil, fmt.Errorf("selection %d: %w", i, err)
		}
		selections[i] = quoteBooking.Selection{FieldID: sel.FieldID, Time: t}
	}

	return &quoteBooking.Request{
		UserID:     userID,
		StoreID:    storeID,
		Sport:      r.Sport,
		Date:       date,
		Selections: selections,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	items := make([]QuoteItem, len(resp.Items))
	for i, it := range resp.Items {
		items[i] = QuoteItem{
			FieldID:   it.FieldID,
			FieldName: it.FieldName,
			StartTime: it.StartTime.String(),
			EndTime:   it.EndTime.String(),
			Price:     it.Price,
			IsSpecial: it.IsSpecial,
		}
	}

	return &QuoteResponse{
		StoreID: resp.StoreID,
		Date:    resp.Date.Format(domain.DateFormat),
		Items:   items,
		Total:   resp.Total,
		Stale:   resp.Stale,
	}
}
