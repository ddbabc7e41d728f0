package create_special_date_pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/middleware"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) CreateSpecialDate(ctx context.Context, req *models.CreateSpecialDateRequest) (*models.RulesResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.RulesResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/fields/{fieldId}/pricings/special-date", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fields/F1/pricings/special-date", strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "admin")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const overnightBody = `{"startAt":"2025-12-24 23:00","endAt":"2025-12-25 01:00","specialPrice":200000}`

func TestHandler_CreatedOvernight(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateSpecialDate", mock.Anything, &models.CreateSpecialDateRequest{
		UserID: "admin", FieldID: "F1", StartAt: "2025-12-24 23:00", EndAt: "2025-12-25 01:00", SpecialPrice: 200000,
	}).Return(&models.RulesResponse{FieldID: "F1"}, nil)

	rec := post(NewHandler(svc, nopLogger{}), overnightBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"fieldId":"F1","created":null,"rules":[]}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "time only", body: `{"startAt":"23:00","endAt":"2025-12-25 01:00","specialPrice":1}`, wantStatus: http.StatusBadRequest},
		{name: "iso layout", body: `{"startAt":"2025-12-24T23:00","endAt":"2025-12-25 01:00","specialPrice":1}`, wantStatus: http.StatusBadRequest},
		{name: "negative price", body: `{"startAt":"2025-12-24 23:00","endAt":"2025-12-25 01:00","specialPrice":-5}`, wantStatus: http.StatusBadRequest},
		{name: "end before start", body: overnightBody, svcErr: pricing.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "no field", body: overnightBody, svcErr: pricing.ErrFieldNotFound, wantStatus: http.StatusNotFound},
		{name: "rejected", body: overnightBody, svcErr: pricing.ErrRejected, wantStatus: http.StatusConflict},
		{name: "internal", body: overnightBody, svcErr: pricing.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("CreateSpecialDate", mock.Anything, mock.Anything).Return(nil, tt.svcErr)

			rec := post(NewHandler(svc, nopLogger{}), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
