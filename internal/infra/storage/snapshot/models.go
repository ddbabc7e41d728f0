package snapshot

import (
	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/types"
)

// payload JSON-представление сетки в колонке payload
type payload struct {
	Fields []fieldPayload `json:"fields"`
}

type fieldPayload struct {
	FieldID      string        `json:"fieldId"`
	FieldName    string        `json:"fieldName"`
	DefaultPrice int64         `json:"defaultPrice"`
	Slots        []slotPayload `json:"slots"`
}

type slotPayload struct {
	Time      types.TimeString `json:"time"`
	Status    string           `json:"status"`
	Price     int64            `json:"price"`
	IsSpecial bool             `json:"isSpecial"`
	Booking   *bookingPayload  `json:"booking,omitempty"`
}

type bookingPayload struct {
	UserID    string `json:"userId"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"createdAt"`
}

func toPayload(grid *domain.SlotGrid) payload {
	fields := make([]fieldPayload, len(grid.Fields))
	for i, f := range grid.Fields {
		slots := make([]slotPayload, len(f.Slots))
		for j, s := range f.Slots {
			slots[j] = slotPayload{
				Time:      s.Time,
				Status:    string(s.Status),
				Price:     s.Price,
				IsSpecial: s.IsSpecial,
			}
			if s.Booking != nil {
				slots[j].Booking = &bookingPayload{
					UserID:    s.Booking.UserID,
					Price:     s.Booking.Price,
					CreatedAt: s.Booking.CreatedAt,
				}
			}
		}
		fields[i] = fieldPayload{
			FieldID:      f.FieldID,
			FieldName:    f.FieldName,
			DefaultPrice: f.DefaultPrice,
			Slots:        slots,
		}
	}
	return payload{Fields: fields}
}

func (p payload) toDomain() []domain.FieldSlots {
	fields := make([]domain.FieldSlots, len(p.Fields))
	for i, f := range p.Fields {
		slots := make([]domain.Slot, len(f.Slots))
		for j, s := range f.Slots {
			slots[j] = domain.Slot{
				Time:      s.Time,
				Status:    domain.SlotStatus(s.Status),
				Price:     s.Price,
				IsSpecial: s.IsSpecial,
			}
			if s.Booking != nil {
				slots[j].Booking = &domain.SlotBooking{
					UserID:    s.Booking.UserID,
					Price:     s.Booking.Price,
					CreatedAt: s.Booking.CreatedAt,
				}
			}
		}
		fields[i] = domain.FieldSlots{
			FieldID:      f.FieldID,
			FieldName:    f.FieldName,
			DefaultPrice: f.DefaultPrice,
			Slots:        slots,
		}
	}
	return fields
}
