package create_special_date_pricing

import (
	"context"

	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

type PricingService interface {
	CreateSpecialDate(ctx context.Context, req *models.CreateSpecialDateRequest) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
