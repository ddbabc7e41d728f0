package get_revenue

import (
	"context"
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

// OrdersClient интерфейс клиента бэкенда для заказов
type OrdersClient interface {
	GetOrders(ctx context.Context, storeID string, dateFrom, dateTo time.Time) ([]domain.Order, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
