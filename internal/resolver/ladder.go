package resolver

import (
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/types"
)

// BuildLadder генерирует 30-минутные слоты от открытия до закрытия поля.
// Слот, выходящий за время закрытия, не создается. Закрытие "00:00" или
// раньше открытия означает работу до полуночи. Пустые или нечитаемые часы
// работы дают полные сутки.
func (r *Resolver) BuildLadder(field domain.Field) []types.TimeString {
	openMinutes, closeMinutes := 0, domain.MinutesPerDay

	open, errOpen := types.NewTimeStringFromString(field.OpenTime)
	closing, errClose := types.NewTimeStringFromString(field.CloseTime)
	if errOpen != nil || errClose != nil {
		if field.OpenTime != "" || field.CloseTime != "" {
			r.logger.Warn("BuildLadder: field=%s bad operating hours %q-%q, using full day",
				field.ID, field.OpenTime, field.CloseTime)
			r.skipped.SkippedRecord(SkipKindFieldHours)
		}
	} else {
		openMinutes = open.Minutes()
		closeMinutes = closing.Minutes()
		if closeMinutes <= openMinutes {
			closeMinutes = domain.MinutesPerDay
		}
	}

	ladder := make([]types.TimeString, 0, (closeMinutes-openMinutes)/domain.SlotDurationMinutes)
	for m := openMinutes; m+domain.SlotDurationMinutes <= closeMinutes; m += domain.SlotDurationMinutes {
		ladder = append(ladder, types.FromMinutes(m))
	}
	return ladder
}

// BuildFieldSlots собирает лестницу слотов поля с занятостью и ценами.
// availability - результат ResolveAvailability для той же даты.
func (r *Resolver) BuildFieldSlots(
	field domain.Field,
	date time.Time,
	rules []domain.PricingRule,
	availability map[domain.SlotKey]domain.SlotStatus,
) domain.FieldSlots {
	ladder := r.BuildLadder(field)
	bookings := r.BookingsBySlot(field.ID, date, field.Bookings)

	slots := make([]domain.Slot, len(ladder))
	for i, t := range ladder {
		price := r.ResolvePrice(rules, date, t, field.DefaultPrice)

		status, ok := availability[domain.SlotKey{FieldID: field.ID, Time: t}]
		if !ok {
			status = domain.SlotAvailable
		}

		slot := domain.Slot{
			Time:      t,
			Status:    status,
			Price:     price.Price,
			IsSpecial: price.IsSpecial,
		}
		if status == domain.SlotBooked {
			if booking, found := bookings[t]; found {
				b := booking
				slot.Booking = &b
			}
		}
		slots[i] = slot
	}

	return domain.FieldSlots{
		FieldID:      field.ID,
		FieldName:    field.Name,
		DefaultPrice: field.DefaultPrice,
		Slots:        slots,
	}
}
