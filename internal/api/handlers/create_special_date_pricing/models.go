package create_special_date_pricing

import (
	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

// CreateSpecialDatePricingRequest HTTP request model.
// Окно может переходить через полночь: 2025-12-24 23:00 - 2025-12-25 01:00.
type CreateSpecialDatePricingRequest struct {
	StartAt      string `json:"startAt" validate:"required,datetime=2006-01-02 15:04"`
	EndAt        string `json:"endAt" validate:"required,datetime=2006-01-02 15:04"`
	SpecialPrice *int64 `json:"specialPrice" validate:"required,gte=0"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *CreateSpecialDatePricingRequest) ToServiceRequest(userID, fieldID string) *models.CreateSpecialDateRequest {
	return &models.CreateSpecialDateRequest{
		UserID:       userID,
		FieldID:      fieldID,
		StartAt:      r.StartAt,
		EndAt:        r.EndAt,
		SpecialPrice: *r.SpecialPrice,
	}
}

// PricingCreatedResponse HTTP response model
type PricingCreatedResponse struct {
	FieldID string               `json:"fieldId"`
	Created *domain.PricingRule  `json:"created"`
	Rules   []domain.PricingRule `json:"rules"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RulesResponse) *PricingCreatedResponse {
	rules := resp.Rules
	if rules == nil {
		rules = []domain.PricingRule{}
	}
	return &PricingCreatedResponse{FieldID: resp.FieldID, Created: resp.Created, Rules: rules}
}
