package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RuleKind discriminates pricing override windows.
type RuleKind int

const (
	RuleKindUnknown RuleKind = iota
	RuleKindDayOfWeek
	RuleKindSpecificDate
)

func (k RuleKind) String() string {
	switch k {
	case RuleKindDayOfWeek:
		return "day_of_week"
	case RuleKindSpecificDate:
		return "specific_date"
	default:
		return "unknown"
	}
}

// RuleTime is the startAt/endAt value of a pricing rule.
// The backend sends either a string ("HH:MM", "YYYY-MM-DD HH:MM" or an ISO
// datetime) or an object {"hour": H, "minute": M}.
type RuleTime struct {
	Text       string
	Hour       int
	Minute     int
	Structured bool
}

type ruleTimeObject struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// TextTime builds a string-shaped RuleTime.
func TextTime(s string) *RuleTime {
	return &RuleTime{Text: s}
}

// ClockTime builds an object-shaped RuleTime.
func ClockTime(hour, minute int) *RuleTime {
	return &RuleTime{Hour: hour, Minute: minute, Structured: true}
}

// UnmarshalJSON accepts both the string and the object form.
func (t *RuleTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("rule time: %w", err)
		}
		*t = RuleTime{Text: s}
		return nil
	}

	var obj ruleTimeObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("rule time: %w", err)
	}
	*t = RuleTime{Hour: obj.Hour, Minute: obj.Minute, Structured: true}
	return nil
}

// MarshalJSON keeps the shape the value was received in.
func (t RuleTime) MarshalJSON() ([]byte, error) {
	if t.Structured {
		return json.Marshal(ruleTimeObject{Hour: t.Hour, Minute: t.Minute})
	}
	return json.Marshal(t.Text)
}

// HasDateComponent reports whether the value carries a calendar date:
// a '-' date separator and either 'T' or a space as time separator.
func (t *RuleTime) HasDateComponent() bool {
	if t == nil || t.Structured {
		return false
	}
	return strings.Contains(t.Text, "-") &&
		(strings.Contains(t.Text, "T") || strings.Contains(t.Text, " "))
}

func (t *RuleTime) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.Structured {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}
	return t.Text
}

// PricingRule is one price override window of a field.
type PricingRule struct {
	ID           string    `json:"_id"`
	FieldID      string    `json:"fieldId"`
	DayOfWeek    *string   `json:"dayOfWeek,omitempty"`
	StartAt      *RuleTime `json:"startAt,omitempty"`
	EndAt        *RuleTime `json:"endAt,omitempty"`
	SpecialPrice *int64    `json:"specialPrice,omitempty"`
}

// Kind is derived from the shape of StartAt: a date component makes the rule
// date-specific, anything else with a weekday is a day-of-week rule.
func (r *PricingRule) Kind() RuleKind {
	if r.StartAt.HasDateComponent() {
		return RuleKindSpecificDate
	}
	if r.DayOfWeek != nil {
		return RuleKindDayOfWeek
	}
	return RuleKindUnknown
}

// PriceOr returns the special price, or def when the rule has none.
func (r *PricingRule) PriceOr(def int64) int64 {
	if r.SpecialPrice == nil {
		return def
	}
	return *r.SpecialPrice
}

// SlotPrice is the resolved price of one slot.
type SlotPrice struct {
	Price     int64
	IsSpecial bool
}
