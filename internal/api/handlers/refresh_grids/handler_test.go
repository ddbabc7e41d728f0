package refresh_grids

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MoodLink/ArenaAxis-sub000/internal/service/refresher"
)

type fakeRefresher struct {
	reasons []refresher.Reason
	err     error
}

func (f *fakeRefresher) Trigger(reason refresher.Reason) error {
	f.reasons = append(f.reasons, reason)
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/refresh", strings.NewReader(body)))
	return rec
}

func TestHandler(t *testing.T) {
	svc := &fakeRefresher{}
	h := NewHandler(svc, nopLogger{})

	rec := post(h, `{"reason":"payment_completed"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []refresher.Reason{refresher.ReasonPaymentCompleted}, svc.reasons)

	rec = post(h, `{"reason":"tick"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, svc.reasons, 1)
}

func TestHandler_QueueFull(t *testing.T) {
	h := NewHandler(&fakeRefresher{err: refresher.ErrBusy}, nopLogger{})

	rec := post(h, `{"reason":"visibility"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
