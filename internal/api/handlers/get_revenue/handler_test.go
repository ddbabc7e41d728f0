package get_revenue

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

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/middleware"
	getRevenue "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_revenue"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getRevenue.Request) (*getRevenue.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getRevenue.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/stores/{storeId}/revenue", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, "admin")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	from := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getRevenue.Request{UserID: "admin", StoreID: "S1", From: from, To: to}).
		Return(&getRevenue.Response{
			StoreID: "S1", From: from, To: to, Total: 250000, OrderCount: 1, SlotCount: 2,
			ByField: []getRevenue.FieldRevenue{{FieldID: "F1", Total: 250000, Slots: 2}},
			ByDay:   []getRevenue.DayRevenue{{Date: "2025-12-01", Total: 250000, Slots: 2}},
		}, nil)

	rec := get(NewHandler(uc, nopLogger{}), "/api/v1/stores/S1/revenue?from=2025-12-01&to=2025-12-07")
	require.Equal(t, http.StatusOK, rec.Code)

	var body RevenueResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(250000), body.Total)
	assert.Equal(t, "2025-12-07", body.To)
	require.Len(t, body.ByDay, 1)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		ucErr      error
		wantStatus int
	}{
		{name: "missing to", target: "/api/v1/stores/S1/revenue?from=2025-12-01", wantStatus: http.StatusBadRequest},
		{name: "reversed", target: "/api/v1/stores/S1/revenue?from=2025-12-07&to=2025-12-01", ucErr: getRevenue.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "no store", target: "/api/v1/stores/S1/revenue?from=2025-12-01&to=2025-12-07", ucErr: getRevenue.ErrStoreNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", target: "/api/v1/stores/S1/revenue?from=2025-12-01&to=2025-12-07", ucErr: getRevenue.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)

			rec := get(NewHandler(uc, nopLogger{}), tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
