package resolver

import (
	"strings"
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/types"
)

// ResolvePrice вычисляет цену слота по правилам поля.
//
// Порядок применения:
// 1. Правила на конкретную дату (первое совпавшее по порядку списка)
// 2. Правила по дню недели (только если п.1 ничего не дал)
// 3. Цена поля по умолчанию
//
// Правила не сортируются по специфичности: порядок списка задает вызывающий.
// Некорректное правило просто не совпадает, ошибки не возвращаются.
func (r *Resolver) ResolvePrice(
	rules []domain.PricingRule,
	date time.Time,
	slot types.TimeString,
	defaultPrice int64,
) domain.SlotPrice {
	slotMinutes := clockMinutes(slot.String())
	dateStr := date.Format(domain.DateFormat)

	// 1. Правила на конкретную дату
	for i := range rules {
		rule := &rules[i]
		if rule.Kind() != domain.RuleKindSpecificDate {
			continue
		}
		if r.matchSpecificDate(rule, dateStr, slotMinutes) {
			return domain.SlotPrice{Price: rule.PriceOr(defaultPrice), IsSpecial: true}
		}
	}

	// 2. Правила по дню недели
	weekday := domain.WeekdayNames[date.Weekday()]
	for i := range rules {
		rule := &rules[i]
		if rule.Kind() != domain.RuleKindDayOfWeek {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(*rule.DayOfWeek), weekday) {
			continue
		}
		if r.matchDayOfWeek(rule, slotMinutes) {
			return domain.SlotPrice{Price: rule.PriceOr(defaultPrice), IsSpecial: true}
		}
	}

	// 3. Совпадений нет
	return domain.SlotPrice{Price: defaultPrice, IsSpecial: false}
}

// ValidateRules пишет предупреждения о правилах, которые никогда не совпадут.
// Вызывается один раз на загрузку списка, чтобы не дублировать сообщения на каждый слот.
func (r *Resolver) ValidateRules(fieldID string, rules []domain.PricingRule) int {
	skipped := 0
	for i := range rules {
		rule := &rules[i]
		reason := ""

		switch {
		case rule.StartAt == nil || rule.EndAt == nil:
			reason = "missing startAt/endAt"
		case rule.Kind() == domain.RuleKindUnknown:
			reason = "neither a date nor a weekday"
		case rule.Kind() == domain.RuleKindSpecificDate && !rule.EndAt.HasDateComponent():
			reason = "date-specific rule without end date"
		}

		if reason != "" {
			r.logger.Warn("ValidateRules: field=%s rule id=%s ignored: %s", fieldID, rule.ID, reason)
			r.skipped.SkippedRecord(SkipKindPricingRule)
			skipped++
		}
	}
	return skipped
}

// matchSpecificDate проверяет правило на дату с учетом перехода через полночь:
//   - обе даты правила равны дате запроса: start <= slot < end
//   - правило начинается в дату запроса и заканчивается позже: slot >= start
//   - правило началось раньше и заканчивается в дату запроса: slot < end
//   - иначе совпадения нет
func (r *Resolver) matchSpecificDate(rule *domain.PricingRule, date string, slotMinutes int) bool {
	if rule.StartAt == nil || rule.EndAt == nil || rule.EndAt.Structured {
		return false
	}

	startDate, startClock := splitDateTime(rule.StartAt.Text)
	endDate, endClock := splitDateTime(rule.EndAt.Text)
	startTotal := clockMinutes(startClock)
	endTotal := clockMinutes(endClock)

	switch {
	case startDate == date && endDate == date:
		return startTotal <= slotMinutes && slotMinutes < endTotal
	case startDate == date && endDate > date:
		return slotMinutes >= startTotal
	case startDate < date && endDate == date:
		return slotMinutes < endTotal
	default:
		return false
	}
}

// matchDayOfWeek сравнивает только время суток: start <= slot < end
func (r *Resolver) matchDayOfWeek(rule *domain.PricingRule, slotMinutes int) bool {
	if rule.StartAt == nil || rule.EndAt == nil {
		return false
	}
	start := ruleClockMinutes(rule.StartAt)
	end := ruleClockMinutes(rule.EndAt)
	return start <= slotMinutes && slotMinutes < end
}

// ruleClockMinutes читает время суток из любой формы RuleTime
func ruleClockMinutes(t *domain.RuleTime) int {
	if t.Structured {
		return t.Hour*60 + t.Minute
	}
	if t.HasDateComponent() {
		_, clock := splitDateTime(t.Text)
		return clockMinutes(clock)
	}
	return clockMinutes(t.Text)
}
