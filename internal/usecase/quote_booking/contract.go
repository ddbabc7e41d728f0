package quote_booking

import (
	"context"

	"github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_slot_grid"
)

// GridProvider источник разрешенной сетки слотов
type GridProvider interface {
	Execute(ctx context.Context, req *get_slot_grid.Request) (*get_slot_grid.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
