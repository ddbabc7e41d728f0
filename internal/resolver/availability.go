package resolver

import (
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/types"
)

// ResolveAvailability раскладывает оплаченные интервалы на занятые 30-минутные слоты.
//
// Интервал полуоткрытый: [10:00, 11:00) занимает 10:00 и 10:30, но не 11:00.
// Слоты, отсутствующие в результате, свободны.
//
// Учитываются только интервалы полей из fieldIDs со статусом PAID. Интервалы
// с нечитаемым временем пропускаются с предупреждением. Интервал, чья дата
// явно отличается от date, тоже пропускается.
func (r *Resolver) ResolveAvailability(
	fieldIDs []string,
	date time.Time,
	intervals []domain.BookedInterval,
) map[domain.SlotKey]domain.SlotStatus {
	result := make(map[domain.SlotKey]domain.SlotStatus)

	known := make(map[string]struct{}, len(fieldIDs))
	for _, id := range fieldIDs {
		known[id] = struct{}{}
	}
	dateStr := date.Format(domain.DateFormat)

	for _, interval := range intervals {
		if _, ok := known[interval.FieldID]; !ok {
			continue
		}
		if !interval.IsPaid() {
			continue
		}

		if day, ok := isoDate(interval.StartTime); ok && day != dateStr {
			r.logger.Debug("ResolveAvailability: field=%s interval %s is not on %s, skipped",
				interval.FieldID, interval.StartTime, dateStr)
			continue
		}

		startMinutes, okStart := isoClockMinutes(interval.StartTime)
		endMinutes, okEnd := isoClockMinutes(interval.EndTime)
		if !okStart || !okEnd {
			r.logger.Warn("ResolveAvailability: field=%s unparseable interval start=%q end=%q, skipped",
				interval.FieldID, interval.StartTime, interval.EndTime)
			r.skipped.SkippedRecord(SkipKindInterval)
			continue
		}

		for m := startMinutes; m < endMinutes; m += domain.SlotDurationMinutes {
			key := domain.SlotKey{FieldID: interval.FieldID, Time: types.FromMinutes(m)}
			result[key] = domain.SlotBooked
		}
	}

	return result
}

// BookingsBySlot возвращает, какой оплаченный интервал занимает каждый слот.
// Если интервалы пересекаются, побеждает первый в списке. Интервалы другой
// даты не учитываются, как и в ResolveAvailability.
func (r *Resolver) BookingsBySlot(
	fieldID string,
	date time.Time,
	intervals []domain.BookedInterval,
) map[types.TimeString]domain.SlotBooking {
	result := make(map[types.TimeString]domain.SlotBooking)
	dateStr := date.Format(domain.DateFormat)

	for _, interval := range intervals {
		if interval.FieldID != fieldID || !interval.IsPaid() {
			continue
		}
		if day, ok := isoDate(interval.StartTime); ok && day != dateStr {
			continue
		}
		startMinutes, okStart := isoClockMinutes(interval.StartTime)
		endMinutes, okEnd := isoClockMinutes(interval.EndTime)
		if !okStart || !okEnd {
			continue
		}

		for m := startMinutes; m < endMinutes; m += domain.SlotDurationMinutes {
			t := types.FromMinutes(m)
			if _, taken := result[t]; taken {
				continue
			}
			result[t] = domain.SlotBooking{
				UserID:    interval.UserID,
				Price:     interval.Price,
				CreatedAt: interval.CreatedAt,
			}
		}
	}

	return result
}
