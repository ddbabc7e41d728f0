package get_revenue

import (
	"context"

	getRevenue "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_revenue"
)

type GetRevenueUseCase interface {
	Execute(ctx context.Context, req *getRevenue.Request) (*getRevenue.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
