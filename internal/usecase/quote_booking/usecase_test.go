package quote_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_slot_grid"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/types"
)

type mockGrids struct{ mock.Mock }

func (m *mockGrids) Execute(ctx context.Context, req *get_slot_grid.Request) (*get_slot_grid.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*get_slot_grid.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var quoteDate = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

func testGrid() *domain.SlotGrid {
	return &domain.SlotGrid{
		Key: domain.GridKey{StoreID: "S1", Date: "2025-12-01"},
		Fields: []domain.FieldSlots{{
			FieldID:   "F1",
			FieldName: "Court 1",
			Slots: []domain.Slot{
				{Time: "09:30", Status: domain.SlotAvailable, Price: 100000},
				{Time: "10:00", Status: domain.SlotBooked, Price: 150000, IsSpecial: true},
				{Time: "11:00", Status: domain.SlotAvailable, Price: 150000, IsSpecial: true},
				{Time: "23:30", Status: domain.SlotAvailable, Price: 80000},
			},
		}},
	}
}

func newTestUseCase(grid *domain.SlotGrid, err error) (*UseCase, *mockGrids) {
	grids := &mockGrids{}
	call := grids.On("Execute", mock.Anything, mock.MatchedBy(func(req *get_slot_grid.Request) bool {
		return req.Fresh && req.StoreID == "S1"
	}))
	if err != nil {
		call.Return(nil, err)
	} else {
		call.Return(&get_slot_grid.Response{Grid: grid, Source: get_slot_grid.SourceBackend}, nil)
	}
	return NewUseCase(grids, nopLogger{}), grids
}

func TestUseCase_Execute(t *testing.T) {
	uc, grids := newTestUseCase(testGrid(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StoreID: "S1",
		Date:    quoteDate,
		Selections: []Selection{
			{FieldID: "F1", Time: "09:30"},
			{FieldID: "F1", Time: "11:00"},
			{FieldID: "F1", Time: "23:30"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, int64(330000), resp.Total)
	assert.True(t, resp.Items[1].IsSpecial)
	assert.Equal(t, types.TimeString("11:30"), resp.Items[1].EndTime)
	assert.Equal(t, types.TimeString("24:00"), resp.Items[2].EndTime)
	assert.False(t, resp.Stale)
	grids.AssertExpectations(t)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		selections []Selection
		wantErr    error
	}{
		{name: "empty", selections: nil, wantErr: ErrEmptySelection},
		{name: "duplicate", selections: []Selection{{FieldID: "F1", Time: "09:30"}, {FieldID: "F1", Time: "09:30"}}, wantErr: ErrDuplicateSlot},
		{name: "booked", selections: []Selection{{FieldID: "F1", Time: "10:00"}}, wantErr: ErrSlotNotAvailable},
		{name: "off ladder", selections: []Selection{{FieldID: "F1", Time: "09:45"}}, wantErr: ErrSlotNotFound},
		{name: "unknown field", selections: []Selection{{FieldID: "F9", Time: "09:30"}}, wantErr: ErrFieldNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(testGrid(), nil)
			_, err := uc.Execute(context.Background(), &Request{StoreID: "S1", Date: quoteDate, Selections: tt.selections})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_GridErrors(t *testing.T) {
	uc, _ := newTestUseCase(nil, get_slot_grid.ErrStoreNotFound)
	_, err := uc.Execute(context.Background(), &Request{StoreID: "S1", Date: quoteDate, Selections: []Selection{{FieldID: "F1", Time: "09:30"}}})
	assert.ErrorIs(t, err, ErrStoreNotFound)

	uc, _ = newTestUseCase(nil, get_slot_grid.ErrBackendUnavailable)
	_, err = uc.Execute(context.Background(), &Request{StoreID: "S1", Date: quoteDate, Selections: []Selection{{FieldID: "F1", Time: "09:30"}}})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_StaleGrid(t *testing.T) {
	grid := testGrid()
	grid.Stale = true
	uc, _ := newTestUseCase(grid, nil)

	resp, err := uc.Execute(context.Background(), &Request{StoreID: "S1", Date: quoteDate, Selections: []Selection{{FieldID: "F1", Time: "09:30"}}})
	require.NoError(t, err)
	assert.True(t, resp.Stale)
}
