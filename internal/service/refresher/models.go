package refresher

import (
	"fmt"
	"strings"
	"time"
)

// Reason причина обновления сеток
type Reason string

const (
	ReasonTick             Reason = "tick"
	ReasonPaymentCompleted Reason = "payment_completed"
	ReasonPaymentBurst     Reason = "payment_burst"
	ReasonVisibility       Reason = "visibility"
	ReasonNavigation       Reason = "navigation"
	ReasonPricingChanged   Reason = "pricing_changed"
)

// ParseReason разбирает причину, пришедшую снаружи.
// tick и payment_burst порождаются только самим обновлением.
func ParseReason(s string) (Reason, error) {
	switch r := Reason(strings.ToLower(strings.TrimSpace(s))); r {
	case ReasonPaymentCompleted, ReasonVisibility, ReasonNavigation, ReasonPricingChanged:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReason, s)
	}
}

// Settings параметры расписания
type Settings struct {
	Interval      time.Duration // плановое обновление
	BurstCount    int           // повторов после оплаты
	BurstInterval time.Duration // пауза между повторами
}

// DefaultSettings 30 секунд между плановыми обновлениями, после оплаты
// еще три обновления раз в секунду
func DefaultSettings() Settings {
	return Settings{
		Interval:      30 * time.Second,
		BurstCount:    3,
		BurstInterval: time.Second,
	}
}
