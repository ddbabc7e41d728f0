package get_slot_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/integrations/arenaapi"
)

// UseCase use case получения сетки слотов магазина на дату
type UseCase struct {
	client       ArenaClient
	pricing      PricingProvider
	resolver     SlotResolver
	grids        GridStore
	snapshots    SnapshotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. snapshots может быть nil.
func NewUseCase(
	client ArenaClient,
	pricing PricingProvider,
	resolver SlotResolver,
	grids GridStore,
	snapshots SnapshotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		pricing:      pricing,
		resolver:     resolver,
		grids:        grids,
		snapshots:    snapshots,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает сетку из памяти, а при ее отсутствии или Fresh
// загружает заново. Если бэкенд недоступен, отдает последнюю известную
// сетку с флагом Stale.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotGrid: validation failed: %v", err)
		return nil, err
	}

	key := gridKey(req)

	if !req.Fresh {
		if grid, ok := uc.grids.Get(key); ok {
			return &Response{Grid: grid, Source: SourceMemory}, nil
		}
	}

	grid, err := uc.Load(ctx, key)
	if err == nil {
		return &Response{Grid: grid, Source: SourceBackend}, nil
	}
	if !errors.Is(err, ErrBackendUnavailable) {
		return nil, err
	}

	if old, ok := uc.grids.Peek(key); ok {
		uc.logger.Warn("GetSlotGrid: store=%s date=%s serving stale grid from memory: %v", key.StoreID, key.Date, err)
		return &Response{Grid: markStale(old), Source: SourceMemory}, nil
	}

	if uc.snapshots != nil {
		snap, snapErr := uc.snapshots.Get(ctx, key)
		if snapErr == nil {
			uc.logger.Warn("GetSlotGrid: store=%s date=%s serving snapshot from %s",
				key.StoreID, key.Date, snap.FetchedAt.Format(domain.DateTimeFormat))
			return &Response{Grid: markStale(snap), Source: SourceSnapshot}, nil
		}
		uc.logger.Info("GetSlotGrid: no snapshot for store=%s date=%s: %v", key.StoreID, key.Date, snapErr)
	}

	return nil, err
}

// Load получает поля, бронирования и правила цен, прогоняет резолверы и
// сохраняет результат. При ошибке бэкенда ранее сохраненная сетка не трогается.
func (uc *UseCase) Load(ctx context.Context, key domain.GridKey) (*domain.SlotGrid, error) {
	date, err := keyDate(key)
	if err != nil {
		return nil, err
	}

	fields, err := uc.client.GetFieldsWithStatus(ctx, key.StoreID, key.Sport, date)
	if err != nil {
		if errors.Is(err, arenaapi.ErrNotFound) {
			uc.logger.Warn("GetSlotGrid: store=%s not found", key.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("GetSlotGrid: failed to get fields of store=%s date=%s: %v", key.StoreID, key.Date, err)
		return nil, fmt.Errorf("%w: failed to get fields: %v", ErrBackendUnavailable, err)
	}

	rulesByField := make(map[string][]domain.PricingRule, len(fields))
	var intervals []domain.BookedInterval
	for _, field := range fields {
		rules, err := uc.pricing.List(ctx, field.ID)
		if err != nil {
			uc.logger.Error("GetSlotGrid: failed to get pricings of field=%s: %v", field.ID, err)
			return nil, fmt.Errorf("%w: failed to get pricings: %v", ErrBackendUnavailable, err)
		}
		rulesByField[field.ID] = rules
		intervals = append(intervals, field.Bookings...)
	}

	availability := uc.resolver.ResolveAvailability(domain.FieldIDs(fields), date, intervals)

	grid := &domain.SlotGrid{
		Key:       key,
		Fields:    make([]domain.FieldSlots, len(fields)),
		FetchedAt: uc.timeProvider.Now(),
	}
	for i, field := range fields {
		grid.Fields[i] = uc.resolver.BuildFieldSlots(field, date, rulesByField[field.ID], availability)
	}

	uc.grids.Put(grid)

	if uc.snapshots != nil {
		if err := uc.snapshots.Save(ctx, grid); err != nil {
			uc.logger.Warn("GetSlotGrid: failed to save snapshot store=%s date=%s: %v", key.StoreID, key.Date, err)
		}
	}

	uc.logger.Info("GetSlotGrid: resolved store=%s sport=%q date=%s fields=%d booked=%d",
		key.StoreID, key.Sport, key.Date, len(grid.Fields), grid.BookedCount())

	return grid, nil
}

func markStale(grid *domain.SlotGrid) *domain.SlotGrid {
	stale := *grid
	stale.Stale = true
	return &stale
}
