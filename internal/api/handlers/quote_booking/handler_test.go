package quote_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	quoteBooking "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/quote_booking"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *quoteBooking.Request) (*quoteBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*quoteBooking.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/stores/{storeId}/quote", h.Handle).Methods(http.MethodPost)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stores/S1/quote", strings.NewReader(body))
	req.Header.Set("X-User-ID", "u1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *quoteBooking.Request) bool {
		return req.StoreID == "S1" && req.UserID == "u1" && len(req.Selections) == 2 &&
			req.Selections[1].Time == "11:00"
	})).Return(&quoteBooking.Response{
		StoreID: "S1",
		Date:    time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		Items: []quoteBooking.Item{
			{FieldID: "F1", StartTime: "10:30", EndTime: "11:00", Price: 100000},
			{FieldID: "F1", StartTime: "11:00", EndTime: "11:30", Price: 150000, IsSpecial: true},
		},
		Total: 250000,
	}, nil)

	rec := post(NewHandler(uc, nopLogger{}),
		`{"date":"2025-12-01","selections":[{"fieldId":"F1","time":"10:30"},{"fieldId":"F1","time":"11:00"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(250000), body.Total)
	assert.Equal(t, "2025-12-01", body.Date)
	assert.Len(t, body.Items, 2)
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `nope`},
		{name: "unknown field", body: `{"date":"2025-12-01","selections":[{"fieldId":"F1","time":"10:00"}],"x":1}`},
		{name: "no selections", body: `{"date":"2025-12-01","selections":[]}`},
		{name: "bad date", body: `{"date":"2025/12/01","selections":[{"fieldId":"F1","time":"10:00"}]}`},
		{name: "bad time", body: `{"date":"2025-12-01","selections":[{"fieldId":"F1","time":"10h"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			rec := post(NewHandler(uc, nopLogger{}), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: quoteBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{err: quoteBooking.ErrSlotNotFound, wantStatus: http.StatusBadRequest},
		{err: quoteBooking.ErrFieldNotFound, wantStatus: http.StatusNotFound},
		{err: quoteBooking.ErrStoreNotFound, wantStatus: http.StatusNotFound},
		{err: quoteBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(NewHandler(uc, nopLogger{}), `{"date":"2025-12-01","selections":[{"fieldId":"F1","time":"10:00"}]}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
