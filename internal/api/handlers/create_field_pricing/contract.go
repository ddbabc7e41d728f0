package create_field_pricing

import (
	"context"

	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

type PricingService interface {
	CreateDayOfWeek(ctx context.Context, req *models.CreateDayOfWeekRequest) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
