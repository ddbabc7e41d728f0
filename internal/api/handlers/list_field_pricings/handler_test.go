package list_field_pricings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MoodLink/ArenaAxis-sub000/internal/service/pricing/models"
)

type mockService struct{ mock.Mock }

func (m *mockService) Get(ctx context.Context, fieldID string) (*models.RulesResponse, error) {
	args := m.Called(ctx, fieldID)
	resp, _ := args.Get(0).(*models.RulesResponse)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(h *Handler) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/fields/{fieldId}/pricings", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/fields/F1/pricings", nil))
	return rec
}

func TestHandler_EmptyRulesAsArray(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything, "F1").Return(&models.RulesResponse{FieldID: "F1"}, nil)

	rec := get(NewHandler(svc, nopLogger{}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"fieldId":"F1","rules":[]}`, rec.Body.String())
}

func TestHandler_ServiceError(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything, "F1").Return(nil, errors.New("backend down"))

	rec := get(NewHandler(svc, nopLogger{}))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
