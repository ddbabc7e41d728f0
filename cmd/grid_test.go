package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	getSlotGridUC "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_slot_grid"
)

func TestPrintGrid(t *testing.T) {
	resp := &getSlotGridUC.Response{
		Source: getSlotGridUC.SourceSnapshot,
		Grid: &domain.SlotGrid{
			Key:   domain.GridKey{StoreID: "S1", Date: "2025-12-01"},
			Stale: true,
			Fields: []domain.FieldSlots{{
				FieldID:   "F1",
				FieldName: "Court 1",
				Slots: []domain.Slot{
					{Time: "10:00", Status: domain.SlotBooked, Price: 100000},
					{Time: "10:30", Status: domain.SlotAvailable, Price: 150000, IsSpecial: true},
				},
			}},
		},
	}

	var all bytes.Buffer
	require.NoError(t, printGrid(&all, resp, false))
	assert.Contains(t, all.String(), "source: snapshot, stale")
	assert.Contains(t, all.String(), "10:00")
	assert.Contains(t, all.String(), "150000")

	var free bytes.Buffer
	require.NoError(t, printGrid(&free, resp, true))
	assert.NotContains(t, free.String(), "10:00")
	assert.Contains(t, free.String(), "10:30")
}
