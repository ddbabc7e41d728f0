package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the exclusive upper bound for a time of day in minutes.
const MinutesPerDay = 24 * 60

// ErrInvalidTimeString is returned when a value is not a valid HH:MM time.
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString is a wall-clock time of day in HH:MM form.
// "24:00" is accepted as the end-of-day bound.
type TimeString string

// NewTimeString takes the hour and minute of t as they are, without zone conversion.
func NewTimeString(t time.Time) TimeString {
	return FromMinutes(t.Hour()*60 + t.Minute())
}

// NewTimeStringFromString validates s and returns it as a TimeString.
// Seconds ("HH:MM:SS") are accepted and dropped.
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if len(s) == 8 && s[5] == ':' {
		s = s[:5]
	}
	if len(s) != 5 || s[2] != ':' {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minute, err := strconv.Atoi(s[3:])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if hour < 0 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	total := hour*60 + minute
	if total > MinutesPerDay {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return FromMinutes(total), nil
}

// FromMinutes formats minutes since midnight as HH:MM.
func FromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

// Minutes returns minutes since midnight. Invalid values yield 0.
func (t TimeString) Minutes() int {
	s := string(t)
	if len(s) < 5 {
		return 0
	}
	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[3:5])
	return hour*60 + minute
}

// AddMinutes returns t shifted by n minutes; the result must stay within the day.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	total := t.Minutes() + n
	if total < 0 || total > MinutesPerDay {
		return "", fmt.Errorf("%w: %s%+d minutes leaves the day", ErrInvalidTimeString, t, n)
	}
	return FromMinutes(total), nil
}

func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
	return nil
}
