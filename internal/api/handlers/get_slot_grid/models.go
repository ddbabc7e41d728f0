package get_slot_grid

import (
	"strconv"
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	getSlotGrid "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_slot_grid"
)

// SlotGridResponse HTTP response model
type SlotGridResponse struct {
	StoreID   string       `json:"storeId"`
	Sport     string       `json:"sport,omitempty"`
	Date      string       `json:"date"`
	FetchedAt time.Time    `json:"fetchedAt"`
	Stale     bool         `json:"stale"`
	Source    string       `json:"source"`
	Fields    []FieldSlots `json:"fields"`
}

// FieldSlots лестница слотов поля
type FieldSlots struct {
	FieldID      string `json:"fieldId"`
	FieldName    string `json:"fieldName"`
	DefaultPrice int64  `json:"defaultPrice"`
	Slots        []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	Time      string       `json:"time"`
	Status    string       `json:"status"`
	Price     int64        `json:"price"`
	IsSpecial bool         `json:"isSpecial"`
	Booking   *SlotBooking `json:"booking,omitempty"`
}

// SlotBooking кто занял слот
type SlotBooking struct {
	UserID    string `json:"userId"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotGrid.Response) *SlotGridResponse {
	grid := resp.Grid

	fields := make([]FieldSlots, len(grid.Fields))
	for i, f := range grid.Fields {
		slots := make([]Slot, len(f.Slots))
		for j, s := range f.Slots {
			slots[j] = Slot{
				Time:      s.Time.String(),
				Status:    string(s.Status),
				Price:     s.Price,
				IsSpecial: s.IsSpecial,
			}
			if s.Booking != nil {
				slots[j].Booking = &SlotBooking{
					UserID:    s.Booking.UserID,
					Price:     s.Booking.Price,
					CreatedAt: s.Booking.CreatedAt,
				}
			}
		}
		fields[i] = FieldSlots{
			FieldID:      f.FieldID,
			FieldName:    f.FieldName,
			DefaultPrice: f.DefaultPrice,
			Slots:        slots,
		}
	}

	return &SlotGridResponse{
		StoreID:   grid.Key.StoreID,
		Sport:     grid.Key.Sport,
		Date:      grid.Key.Date,
		FetchedAt: grid.FetchedAt,
		Stale:     grid.Stale,
		Source:    string(resp.Source),
		Fields:    fields,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Пустая дата означает сегодня.
func ToUseCaseRequest(storeID, dateStr, sport, freshStr string, now time.Time) (*getSlotGrid.Request, error) {
	if dateStr == "" {
		dateStr = now.Format(domain.DateFormat)
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	fresh := false
	if freshStr != "" {
		fresh, err = strconv.ParseBool(freshStr)
		if err != nil {
			return nil, err
		}
	}

	return &getSlotGrid.Request{
		StoreID: storeID,
		Sport:   sport,
		Date:    date,
		Fresh:   fresh,
	}, nil
}
