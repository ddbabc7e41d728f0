package resolver

import (
	"regexp"
	"strconv"
	"strings"
)

// isoClockPattern вытаскивает часы и минуты из ISO-строки ("...THH:MM:...")
var isoClockPattern = regexp.MustCompile(`T(\d{2}):(\d{2}):`)

// isoDatePattern вытаскивает календарную дату из начала ISO-строки
var isoDatePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})T`)

// isoClockMinutes возвращает минуты от полуночи, прочитанные из текста.
// Часовой пояс (Z, +07:00) игнорируется: бэкенд хранит локальное время
// внутри ISO-строки, и перевод через time.Location сдвинул бы час.
func isoClockMinutes(iso string) (int, bool) {
	match := isoClockPattern.FindStringSubmatch(iso)
	if match == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	return hour*60 + minute, true
}

// isoDate возвращает дату YYYY-MM-DD из начала ISO-строки
func isoDate(iso string) (string, bool) {
	match := isoDatePattern.FindStringSubmatch(iso)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// splitDateTime делит "YYYY-MM-DD HH:MM" или ISO-строку на дату и время.
// Если есть пробел, делим по пробелу, иначе по 'T'; от времени берем первые 5 символов.
func splitDateTime(s string) (datePart, clockPart string) {
	sep := "T"
	if strings.Contains(s, " ") {
		sep = " "
	}

	parts := strings.SplitN(s, sep, 2)
	datePart = parts[0]
	if len(parts) < 2 {
		return datePart, ""
	}

	clockPart = parts[1]
	if len(clockPart) > 5 {
		clockPart = clockPart[:5]
	}
	return datePart, clockPart
}

// clockMinutes переводит "HH:MM" в минуты от полуночи.
// Нечитаемые части считаются нулем.
func clockMinutes(s string) int {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		hour = 0
	}

	minute := 0
	if len(parts) > 1 {
		m := parts[1]
		if len(m) > 2 {
			m = m[:2]
		}
		if minute, err = strconv.Atoi(m); err != nil {
			minute = 0
		}
	}

	return hour*60 + minute
}
