package quote_booking

import (
	"fmt"
	"strings"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.StoreID) == "" {
		return fmt.Errorf("%w: storeID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Selections) == 0 {
		return ErrEmptySelection
	}

	seen := make(map[domain.SlotKey]struct{}, len(req.Selections))
	for _, sel := range req.Selections {
		if sel.FieldID == "" {
			return fmt.Errorf("%w: fieldId is required", ErrInvalidInput)
		}
		key := domain.SlotKey{FieldID: sel.FieldID, Time: sel.Time}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: field=%s time=%s", ErrDuplicateSlot, sel.FieldID, sel.Time)
		}
		seen[key] = struct{}{}
	}

	return nil
}
