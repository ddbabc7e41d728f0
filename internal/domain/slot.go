package domain

import (
	"time"

	"github.com/MoodLink/ArenaAxis-sub000/pkg/types"
)

// SlotStatus is the availability of a slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// SlotKey identifies a slot of one field within a grid date.
type SlotKey struct {
	FieldID string
	Time    types.TimeString
}

// SlotBooking carries who holds a booked slot.
type SlotBooking struct {
	UserID    string
	Price     int64
	CreatedAt string
}

// Slot is the derived 30-minute unit of a field on a date.
type Slot struct {
	Time      types.TimeString
	Status    SlotStatus
	Price     int64
	IsSpecial bool
	Booking   *SlotBooking
}

// IsBooked returns true if a paid reservation covers the slot
func (s *Slot) IsBooked() bool {
	return s.Status == SlotBooked
}

// FieldSlots is the slot ladder of one field.
type FieldSlots struct {
	FieldID      string
	FieldName    string
	DefaultPrice int64
	Slots        []Slot
}

// Find returns the slot starting at t.
func (f *FieldSlots) Find(t types.TimeString) (*Slot, bool) {
	for i := range f.Slots {
		if f.Slots[i].Time == t {
			return &f.Slots[i], true
		}
	}
	return nil, false
}

// GridKey identifies one booking grid: a store, an optional sport filter and a date.
type GridKey struct {
	StoreID string
	Sport   string
	Date    string // YYYY-MM-DD
}

// SlotGrid is the resolved availability and pricing of a store for one date.
type SlotGrid struct {
	Key       GridKey
	Fields    []FieldSlots
	FetchedAt time.Time
	Stale     bool
}

// Field returns the ladder of the given field.
func (g *SlotGrid) Field(fieldID string) (*FieldSlots, bool) {
	for i := range g.Fields {
		if g.Fields[i].FieldID == fieldID {
			return &g.Fields[i], true
		}
	}
	return nil, false
}

// BookedCount returns how many slots of the grid are booked.
func (g *SlotGrid) BookedCount() int {
	count := 0
	for _, field := range g.Fields {
		for _, slot := range field.Slots {
			if slot.IsBooked() {
				count++
			}
		}
	}
	return count
}
