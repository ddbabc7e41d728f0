package models

import (
	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

// CreateDayOfWeekRequest запрос на создание правила по дню недели
type CreateDayOfWeekRequest struct {
	UserID       string
	FieldID      string
	DayOfWeek    string // полное английское название дня, регистр не важен
	StartAt      string // HH:MM
	EndAt        string // HH:MM
	SpecialPrice int64
}

// CreateSpecialDateRequest запрос на создание правила на дату
type CreateSpecialDateRequest struct {
	UserID       string
	FieldID      string
	StartAt      string // YYYY-MM-DD HH:MM
	EndAt        string // YYYY-MM-DD HH:MM, может быть на следующий день
	SpecialPrice int64
}

// DeleteRequest запрос на удаление правила
type DeleteRequest struct {
	UserID    string
	FieldID   string
	PricingID string
}

// RulesResponse полный набор правил поля после операции
type RulesResponse struct {
	FieldID string
	Created *domain.PricingRule // nil для List и Delete
	Rules   []domain.PricingRule
}
