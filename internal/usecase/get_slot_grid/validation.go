package get_slot_grid

import (
	"fmt"
	"strings"
	"time"

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

	return nil
}

// gridKey строит ключ сетки. Дата берется из календарных полей req.Date без перевода зон.
func gridKey(req *Request) domain.GridKey {
	return domain.GridKey{
		StoreID: req.StoreID,
		Sport:   req.Sport,
		Date:    req.Date.Format(domain.DateFormat),
	}
}

// keyDate разбирает дату ключа как полночь UTC
func keyDate(key domain.GridKey) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, key.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad grid date %q", ErrInvalidInput, key.Date)
	}
	return date, nil
}
