package get_slot_grid

import (
	"context"
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

// ArenaClient интерфейс клиента бэкенда ArenaAxis
type ArenaClient interface {
	GetFieldsWithStatus(ctx context.Context, storeID, sport string, date time.Time) ([]domain.Field, error)
}

// PricingProvider источник правил цен поля (с кэшем)
type PricingProvider interface {
	List(ctx context.Context, fieldID string) ([]domain.PricingRule, error)
}

// SlotResolver чистые резолверы занятости и цен
type SlotResolver interface {
	ResolveAvailability(fieldIDs []string, date time.Time, intervals []domain.BookedInterval) map[domain.SlotKey]domain.SlotStatus
	BuildFieldSlots(field domain.Field, date time.Time, rules []domain.PricingRule, availability map[domain.SlotKey]domain.SlotStatus) domain.FieldSlots
}

// GridStore хранилище последних разрешенных сеток в памяти
type GridStore interface {
	Get(key domain.GridKey) (*domain.SlotGrid, bool)
	Peek(key domain.GridKey) (*domain.SlotGrid, bool)
	Put(grid *domain.SlotGrid)
}

// SnapshotRepository постоянное хранилище снимков сеток. Может отсутствовать.
type SnapshotRepository interface {
	Save(ctx context.Context, grid *domain.SlotGrid) error
	Get(ctx context.Context, key domain.GridKey) (*domain.SlotGrid, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
