package delete_field_pricing

import (
	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

// PricingRulesResponse HTTP response model с оставшимися правилами
type PricingRulesResponse struct {
	FieldID string               `json:"fieldId"`
	Rules   []domain.PricingRule `json:"rules"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RulesResponse) *PricingRulesResponse {
	rules := resp.Rules
	if rules == nil {
		rules = []domain.PricingRule{}
	}
	return &PricingRulesResponse{FieldID: resp.FieldID, Rules: rules}
}
