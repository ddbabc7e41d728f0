package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/types"
)

// canonicalWeekday возвращает каноническое написание дня недели
func canonicalWeekday(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, weekday := range domain.WeekdayNames {
		if strings.EqualFold(weekday, name) {
			return weekday, true
		}
	}
	return "", false
}

// parseClock принимает строго HH:MM
func parseClock(s string) (types.TimeString, error) {
	if len(s) != len("15:04") {
		return "", fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidInput, s)
	}
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return "", fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidInput, s)
	}
	return t, nil
}

func validateDayOfWeek(req *models.CreateDayOfWeekRequest) error {
	if strings.TrimSpace(req.FieldID) == "" {
		return fmt.Errorf("%w: fieldId is required", ErrInvalidInput)
	}

	weekday, ok := canonicalWeekday(req.DayOfWeek)
	if !ok {
		return fmt.Errorf("%w: unknown dayOfWeek %q", ErrInvalidInput, req.DayOfWeek)
	}
	req.DayOfWeek = weekday

	start, err := parseClock(req.StartAt)
	if err != nil {
		return err
	}
	end, err := parseClock(req.EndAt)
	if err != nil {
		return err
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: endAt must be after startAt", ErrInvalidInput)
	}

	if req.SpecialPrice < 0 {
		return fmt.Errorf("%w: specialPrice must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateSpecialDate(req *models.CreateSpecialDateRequest) error {
	if strings.TrimSpace(req.FieldID) == "" {
		return fmt.Errorf("%w: fieldId is required", ErrInvalidInput)
	}

	start, err := time.Parse(domain.DateTimeFormat, req.StartAt)
	if err != nil {
		return fmt.Errorf("%w: startAt %q must be YYYY-MM-DD HH:MM", ErrInvalidInput, req.StartAt)
	}
	end, err := time.Parse(domain.DateTimeFormat, req.EndAt)
	if err != nil {
		return fmt.Errorf("%w: endAt %q must be YYYY-MM-DD HH:MM", ErrInvalidInput, req.EndAt)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: endAt must be after startAt", ErrInvalidInput)
	}

	if req.SpecialPrice < 0 {
		return fmt.Errorf("%w: specialPrice must not be negative", ErrInvalidInput)
	}
	return nil
}
