package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDateTime(t *testing.T) {
	tests := []struct {
		in        string
		wantDate  string
		wantClock string
	}{
		{in: "2025-12-01 23:00", wantDate: "2025-12-01", wantClock: "23:00"},
		{in: "2025-12-01T23:00:00.000Z", wantDate: "2025-12-01", wantClock: "23:00"},
		{in: "2025-12-01 07:15:30", wantDate: "2025-12-01", wantClock: "07:15"},
		{in: "2025-12-01", wantDate: "2025-12-01", wantClock: ""},
	}

	for _, tt := range tests {
		d, c := splitDateTime(tt.in)
		assert.Equal(t, tt.wantDate, d, tt.in)
		assert.Equal(t, tt.wantClock, c, tt.in)
	}
}

func TestClockMinutes(t *testing.T) {
	assert.Equal(t, 0, clockMinutes(""))
	assert.Equal(t, 90, clockMinutes("01:30"))
	assert.Equal(t, 1410, clockMinutes("23:30:00"))
	assert.Equal(t, 600, clockMinutes("10:zz"))
	assert.Equal(t, 5, clockMinutes("zz:05"))
}

func TestIsoClockMinutes(t *testing.T) {
	m, ok := isoClockMinutes("2025-12-01T06:30:00.000Z")
	assert.True(t, ok)
	assert.Equal(t, 390, m)

	_, ok = isoClockMinutes("2025-12-01 06:30")
	assert.False(t, ok)
}
