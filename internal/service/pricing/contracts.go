package pricing

import (
	"context"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/integrations/arenaapi"
)

// PricingClient интерфейс клиента бэкенда для правил цен
type PricingClient interface {
	GetAllFieldPricings(ctx context.Context, fieldID string) ([]domain.PricingRule, error)
	CreateFieldPricing(ctx context.Context, req *arenaapi.CreateFieldPricingRequest) (*domain.PricingRule, error)
	CreateSpecialDatePricing(ctx context.Context, req *arenaapi.CreateSpecialDatePricingRequest) (*domain.PricingRule, error)
	DeleteFieldPricing(ctx context.Context, pricingID string) error
}

// RulesCache кэш наборов правил по полю
type RulesCache interface {
	Get(fieldID string) ([]domain.PricingRule, bool)
	Set(fieldID string, rules []domain.PricingRule)
	Invalidate(fieldID string)
}

// RuleValidator предупреждает о правилах, которые никогда не совпадут
type RuleValidator interface {
	ValidateRules(fieldID string, rules []domain.PricingRule) int
}

// RefreshNotifier запрашивает пересчет сеток после изменения правил
type RefreshNotifier interface {
	PricingChanged()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
