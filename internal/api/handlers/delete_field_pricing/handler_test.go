package delete_field_pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/middleware"
	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Delete(ctx context.Context, req *models.DeleteRequest) (*models.RulesResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.RulesResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func del(h *Handler, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/fields/{fieldId}/pricings/{pricingId}", h.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/fields/F1/pricings/r1", nil)
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Deleted(t *testing.T) {
	svc := &mockService{}
	svc.On("Delete", mock.Anything, &models.DeleteRequest{UserID: "admin", FieldID: "F1", PricingID: "r1"}).
		Return(&models.RulesResponse{FieldID: "F1", Rules: []domain.PricingRule{{ID: "r2", FieldID: "F1"}}}, nil)

	rec := del(NewHandler(svc, nopLogger{}), "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"_id":"r2"`)
	svc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		svcErr     error
		wantStatus int
	}{
		{name: "no user", wantStatus: http.StatusUnauthorized},
		{name: "not found", userID: "admin", svcErr: pricing.ErrPricingNotFound, wantStatus: http.StatusNotFound},
		{name: "rejected", userID: "admin", svcErr: pricing.ErrRejected, wantStatus: http.StatusConflict},
		{name: "internal", userID: "admin", svcErr: pricing.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Delete", mock.Anything, mock.Anything).Return(nil, tt.svcErr)

			rec := del(NewHandler(svc, nopLogger{}), tt.userID)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
