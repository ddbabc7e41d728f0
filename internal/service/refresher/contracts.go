package refresher

import (
	"context"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

// GridLoader загружает и разрешает сетку заново
type GridLoader interface {
	Load(ctx context.Context, key domain.GridKey) (*domain.SlotGrid, error)
}

// GridKeys список сеток, которые сейчас держатся в памяти
type GridKeys interface {
	Keys() []domain.GridKey
}

// Observer метрики обновлений
type Observer interface {
	ObserveRefresh(reason string, err error)
	SetWatchedGrids(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
