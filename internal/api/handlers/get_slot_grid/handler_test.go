package get_slot_grid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	getSlotGrid "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_slot_grid"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getSlotGrid.Request) (*getSlotGrid.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getSlotGrid.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/stores/{storeId}/slot-grid", h.Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getSlotGrid.Request{
		StoreID: "S1",
		Sport:   "football",
		Date:    time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		Fresh:   true,
	}).Return(&getSlotGrid.Response{
		Source: getSlotGrid.SourceBackend,
		Grid: &domain.SlotGrid{
			Key: domain.GridKey{StoreID: "S1", Sport: "football", Date: "2025-12-01"},
			Fields: []domain.FieldSlots{{
				FieldID: "F1", FieldName: "Court 1", DefaultPrice: 100000,
				Slots: []domain.Slot{
					{Time: "10:00", Status: domain.SlotBooked, Price: 150000, IsSpecial: true,
						Booking: &domain.SlotBooking{UserID: "u1", Price: 150000}},
					{Time: "10:30", Status: domain.SlotAvailable, Price: 150000, IsSpecial: true},
				},
			}},
		},
	}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), "/api/v1/stores/S1/slot-grid?date=2025-12-01&sport=football&fresh=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var body SlotGridResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-12-01", body.Date)
	assert.Equal(t, "backend", body.Source)
	require.Len(t, body.Fields, 1)
	require.Len(t, body.Fields[0].Slots, 2)
	assert.Equal(t, "booked", body.Fields[0].Slots[0].Status)
	assert.Equal(t, "u1", body.Fields[0].Slots[0].Booking.UserID)
	assert.Nil(t, body.Fields[0].Slots[1].Booking)
}

func TestHandler_DefaultsToToday(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getSlotGrid.Request) bool {
		return req.Date.Format(domain.DateFormat) == "2025-12-24" && !req.Fresh
	})).Return(nil, getSlotGrid.ErrStoreNotFound)

	h := NewHandler(uc, nopLogger{})
	h.now = func() time.Time { return time.Date(2025, 12, 24, 15, 0, 0, 0, time.UTC) }

	rec := serve(h, "/api/v1/stores/S1/slot-grid")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		ucErr      error
		wantStatus int
	}{
		{name: "bad date", target: "/api/v1/stores/S1/slot-grid?date=01-12-2025", wantStatus: http.StatusBadRequest},
		{name: "bad fresh", target: "/api/v1/stores/S1/slot-grid?fresh=maybe", wantStatus: http.StatusBadRequest},
		{name: "backend down", target: "/api/v1/stores/S1/slot-grid?date=2025-12-01", ucErr: getSlotGrid.ErrBackendUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", target: "/api/v1/stores/S1/slot-grid?date=2025-12-01", ucErr: getSlotGrid.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)

			rec := serve(NewHandler(uc, nopLogger{}), tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
