package list_field_pricings

import (
	"context"

	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

type PricingService interface {
	Get(ctx context.Context, fieldID string) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
