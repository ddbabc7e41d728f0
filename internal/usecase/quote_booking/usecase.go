package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_slot_grid"
)

// UseCase use case расчета стоимости выбранных слотов перед оплатой
type UseCase struct {
	grids  GridProvider
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(grids GridProvider, logger Logger) *UseCase {
	return &UseCase{
		grids:  grids,
		logger: logger,
	}
}

// Execute считает цену каждого выбранного слота по свежей сетке и общую сумму
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: user=%s, store=%s, date=%s, slots=%d",
		req.UserID, req.StoreID, req.Date.Format(domain.DateFormat), len(req.Selections))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем актуальную сетку
	gridResp, err := uc.grids.Execute(ctx, &get_slot_grid.Request{
		StoreID: req.StoreID,
		Sport:   req.Sport,
		Date:    req.Date,
		Fresh:   true,
	})
	if err != nil {
		if errors.Is(err, get_slot_grid.ErrStoreNotFound) {
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot grid: %v", ErrInternal, err)
	}
	grid := gridResp.Grid

	// 3. Проверяем и оцениваем каждый слот
	items := make([]Item, 0, len(req.Selections))
	var total int64
	for _, sel := range req.Selections {
		field, ok := grid.Field(sel.FieldID)
		if !ok {
			uc.logger.Warn("QuoteBooking: field=%s not in store=%s", sel.FieldID, req.StoreID)
			return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, sel.FieldID)
		}

		slot, ok := field.Find(sel.Time)
		if !ok {
			uc.logger.Warn("QuoteBooking: field=%s has no slot at %s", sel.FieldID, sel.Time)
			return nil, fmt.Errorf("%w: field=%s time=%s", ErrSlotNotFound, sel.FieldID, sel.Time)
		}

		if slot.IsBooked() {
			uc.logger.Warn("QuoteBooking: field=%s slot %s already booked", sel.FieldID, sel.Time)
			return nil, fmt.Errorf("%w: field=%s time=%s", ErrSlotNotAvailable, sel.FieldID, sel.Time)
		}

		end, err := slot.Time.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: slot end: %v", ErrInternal, err)
		}

		items = append(items, Item{
			FieldID:   field.FieldID,
			FieldName: field.FieldName,
			StartTime: slot.Time,
			EndTime:   end,
			Price:     slot.Price,
			IsSpecial: slot.IsSpecial,
		})
		total += slot.Price
	}

	uc.logger.Info("QuoteBooking: store=%s date=%s slots=%d total=%d stale=%v",
		req.StoreID, grid.Key.Date, len(items), total, grid.Stale)

	return &Response{
		StoreID: req.StoreID,
		Date:    req.Date,
		Items:   items,
		Total:   total,
		Stale:   grid.Stale,
	}, nil
}
