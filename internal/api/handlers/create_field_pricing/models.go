package create_field_pricing

import (
	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

// CreateFieldPricingRequest HTTP request model
type CreateFieldPricingRequest struct {
	DayOfWeek    string `json:"dayOfWeek" validate:"required"`
	StartAt      string `json:"startAt" validate:"required,datetime=15:04"`
	EndAt        string `json:"endAt" validate:"required,datetime=15:04"`
	SpecialPrice *int64 `json:"specialPrice" validate:"required,gte=0"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *CreateFieldPricingRequest) ToServiceRequest(userID, fieldID string) *models.CreateDayOfWeekRequest {
	return &models.CreateDayOfWeekRequest{
		UserID:       userID,
		FieldID:      fieldID,
		DayOfWeek:    r.DayOfWeek,
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
