package pricing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/integrations/arenaapi"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

// Service сервис правил цен полей.
// Набор правил поля читается через кэш и после любой мутации
// перечитывается из бэкенда целиком.
type Service struct {
	client    PricingClient
	cache     RulesCache
	validator RuleValidator
	logger    Logger

	mu       sync.RWMutex
	notifier RefreshNotifier
}

// NewService создает новый экземпляр сервиса правил цен
func NewService(
	client PricingClient,
	cache RulesCache,
	validator RuleValidator,
	logger Logger,
) *Service {
	return &Service{
		client:    client,
		cache:     cache,
		validator: validator,
		logger:    logger,
	}
}

// SetRefreshNotifier подключает фоновое обновление сеток.
// Обновление само зависит от сервиса, поэтому подключается после создания.
func (s *Service) SetRefreshNotifier(notifier RefreshNotifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = notifier
}

// List возвращает правила поля в порядке бэкенда
func (s *Service) List(ctx context.Context, fieldID string) ([]domain.PricingRule, error) {
	if rules, ok := s.cache.Get(fieldID); ok {
		return rules, nil
	}

	rules, err := s.client.GetAllFieldPricings(ctx, fieldID)
	if err != nil {
		if errors.Is(err, arenaapi.ErrNotFound) {
			// у поля нет правил
			rules = []domain.PricingRule{}
		} else {
			s.logger.Error("List: failed to get pricings of field=%s: %v", fieldID, err)
			return nil, fmt.Errorf("%w: List - client error: %v", ErrInternal, err)
		}
	}

	if s.validator != nil {
		s.validator.ValidateRules(fieldID, rules)
	}

	s.cache.Set(fieldID, rules)
	return rules, nil
}

// Get возвращает правила поля в виде ответа
func (s *Service) Get(ctx context.Context, fieldID string) (*models.RulesResponse, error) {
	rules, err := s.List(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	return &models.RulesResponse{FieldID: fieldID, Rules: rules}, nil
}

// CreateDayOfWeek создает правило по дню недели
func (s *Service) CreateDayOfWeek(ctx context.Context, req *models.CreateDayOfWeekRequest) (*models.RulesResponse, error) {
	s.logger.Info("CreateDayOfWeek: field=%s day=%s %s-%s price=%d by user=%s",
		req.FieldID, req.DayOfWeek, req.StartAt, req.EndAt, req.SpecialPrice, req.UserID)

	if err := validateDayOfWeek(req); err != nil {
		s.logger.Warn("CreateDayOfWeek: validation failed: %v", err)
		return nil, err
	}

	created, err := s.client.CreateFieldPricing(ctx, &arenaapi.CreateFieldPricingRequest{
		FieldID:      req.FieldID,
		DayOfWeek:    req.DayOfWeek,
		StartAt:      req.StartAt,
		EndAt:        req.EndAt,
		SpecialPrice: req.SpecialPrice,
	})
	if err != nil {
		return nil, s.mapClientError("CreateDayOfWeek", req.FieldID, err)
	}

	return s.afterMutation(ctx, "CreateDayOfWeek", req.FieldID, created), nil
}

// CreateSpecialDate создает правило на конкретную дату
func (s *Service) CreateSpecialDate(ctx context.Context, req *models.CreateSpecialDateRequest) (*models.RulesResponse, error) {
	s.logger.Info("CreateSpecialDate: field=%s %s - %s price=%d by user=%s",
		req.FieldID, req.StartAt, req.EndAt, req.SpecialPrice, req.UserID)

	if err := validateSpecialDate(req); err != nil {
		s.logger.Warn("CreateSpecialDate: validation failed: %v", err)
		return nil, err
	}

	created, err := s.client.CreateSpecialDatePricing(ctx, &arenaapi.CreateSpecialDatePricingRequest{
		FieldID:      req.FieldID,
		StartAt:      req.StartAt,
		EndAt:        req.EndAt,
		SpecialPrice: req.SpecialPrice,
	})
	if err != nil {
		return nil, s.mapClientError("CreateSpecialDate", req.FieldID, err)
	}

	return s.afterMutation(ctx, "CreateSpecialDate", req.FieldID, created), nil
}

// Delete удаляет правило поля
func (s *Service) Delete(ctx context.Context, req *models.DeleteRequest) (*models.RulesResponse, error) {
	s.logger.Info("Delete: field=%s pricing=%s by user=%s", req.FieldID, req.PricingID, req.UserID)

	if req.FieldID == "" || req.PricingID == "" {
		return nil, fmt.Errorf("%w: fieldId and pricingId are required", ErrInvalidInput)
	}

	if err := s.client.DeleteFieldPricing(ctx, req.PricingID); err != nil {
		if errors.Is(err, arenaapi.ErrNotFound) {
			s.logger.Warn("Delete: pricing=%s not found", req.PricingID)
			return nil, ErrPricingNotFound
		}
		return nil, s.mapClientError("Delete", req.FieldID, err)
	}

	return s.afterMutation(ctx, "Delete", req.FieldID, nil), nil
}

// afterMutation сбрасывает кэш поля, перечитывает правила и просит обновить сетки.
// Ошибка перечитывания не отменяет уже выполненную мутацию.
func (s *Service) afterMutation(ctx context.Context, op, fieldID string, created *domain.PricingRule) *models.RulesResponse {
	s.cache.Invalidate(fieldID)

	resp := &models.RulesResponse{FieldID: fieldID, Created: created}
	rules, err := s.List(ctx, fieldID)
	if err != nil {
		s.logger.Warn("%s: failed to refetch pricings of field=%s: %v", op, fieldID, err)
	} else {
		resp.Rules = rules
	}

	s.mu.RLock()
	notifier := s.notifier
	s.mu.RUnlock()
	if notifier != nil {
		notifier.PricingChanged()
	}

	s.logger.Info("%s: field=%s now has %d pricing rules", op, fieldID, len(resp.Rules))
	return resp
}

func (s *Service) mapClientError(op, fieldID string, err error) error {
	switch {
	case errors.Is(err, arenaapi.ErrNotFound):
		s.logger.Warn("%s: field=%s not found", op, fieldID)
		return ErrFieldNotFound
	case errors.Is(err, arenaapi.ErrBadRequest):
		s.logger.Warn("%s: backend rejected pricing for field=%s: %v", op, fieldID, err)
		return fmt.Errorf("%w: %v", ErrRejected, err)
	default:
		s.logger.Error("%s: client error for field=%s: %v", op, fieldID, err)
		return fmt.Errorf("%w: %s - client error: %v", ErrInternal, op, err)
	}
}
