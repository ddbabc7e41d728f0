package get_revenue

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.StoreID) == "" {
		return fmt.Errorf("%w: storeID is required", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	if req.To.Sub(req.From).Hours()/24 > MaxRangeDays {
		return fmt.Errorf("%w: period is longer than %d days", ErrInvalidInput, MaxRangeDays)
	}

	return nil
}
