package create_field_pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/middleware"
	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/ptr"
)

type mockService struct{ mock.Mock }

func (m *mockService) CreateDayOfWeek(ctx context.Context, req *models.CreateDayOfWeekRequest) (*models.RulesResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.RulesResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, userID, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/fields/{fieldId}/pricings", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/fields/F1/pricings", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const validBody = `{"dayOfWeek":"Saturday","startAt":"18:00","endAt":"22:00","specialPrice":120000}`

func TestHandler_Created(t *testing.T) {
	created := domain.PricingRule{ID: "r1", FieldID: "F1", DayOfWeek: ptr.Ptr("Saturday"),
		StartAt: domain.TextTime("18:00"), EndAt: domain.TextTime("22:00"), SpecialPrice: ptr.Ptr(int64(120000))}

	svc := &mockService{}
	svc.On("CreateDayOfWeek", mock.Anything, &models.CreateDayOfWeekRequest{
		UserID: "admin", FieldID: "F1", DayOfWeek: "Saturday", StartAt: "18:00", EndAt: "22:00", SpecialPrice: 120000,
	}).Return(&models.RulesResponse{FieldID: "F1", Created: &created, Rules: []domain.PricingRule{created}}, nil)

	rec := post(NewHandler(svc, nopLogger{}), "admin", validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body PricingCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "r1", body.Created.ID)
	assert.Len(t, body.Rules, 1)
}

func TestHandler_ZeroPriceAllowed(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateDayOfWeek", mock.Anything, mock.MatchedBy(func(req *models.CreateDayOfWeekRequest) bool {
		return req.SpecialPrice == 0
	})).Return(&models.RulesResponse{FieldID: "F1"}, nil)

	rec := post(NewHandler(svc, nopLogger{}), "admin",
		`{"dayOfWeek":"Sunday","startAt":"06:00","endAt":"08:00","specialPrice":0}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "no user", body: validBody, wantStatus: http.StatusUnauthorized},
		{name: "missing price", userID: "admin", body: `{"dayOfWeek":"Saturday","startAt":"18:00","endAt":"22:00"}`, wantStatus: http.StatusBadRequest},
		{name: "bad time", userID: "admin", body: `{"dayOfWeek":"Saturday","startAt":"6pm","endAt":"22:00","specialPrice":1}`, wantStatus: http.StatusBadRequest},
		{name: "service validation", userID: "admin", body: validBody, svcErr: fmt.Errorf("%w: unknown dayOfWeek", pricing.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "rejected", userID: "admin", body: validBody, svcErr: pricing.ErrRejected, wantStatus: http.StatusConflict},
		{name: "no field", userID: "admin", body: validBody, svcErr: pricing.ErrFieldNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", userID: "admin", body: validBody, svcErr: pricing.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("CreateDayOfWeek", mock.Anything, mock.Anything).Return(nil, tt.svcErr)

			rec := post(NewHandler(svc, nopLogger{}), tt.userID, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
