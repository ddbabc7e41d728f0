package delete_field_pricing

import (
	"context"

	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

type PricingService interface {
	Delete(ctx context.Context, req *models.DeleteRequest) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
