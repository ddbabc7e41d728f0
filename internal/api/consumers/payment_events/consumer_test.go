package payment_events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct{ calls int }

func (r *countingRefresher) PaymentCompleted() { r.calls++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandleMessage(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantCalls int
	}{
		{name: "paid", body: `{"orderId":"O1","storeId":"S1","status":"PAID"}`, wantCalls: 1},
		{name: "status omitted", body: `{"orderId":"O1"}`, wantCalls: 1},
		{name: "lowercase status", body: `{"orderId":"O1","status":"paid"}`, wantCalls: 1},
		{name: "pending ignored", body: `{"orderId":"O1","status":"PENDING"}`},
		{name: "not json", body: `paid!`, wantErr: ErrMalformedEvent},
		{name: "missing order", body: `{"storeId":"S1","status":"PAID"}`, wantErr: ErrMalformedEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refresher := &countingRefresher{}
			c := NewConsumer(Config{}, refresher, nopLogger{})

			err := c.HandleMessage("payment.paid", []byte(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, refresher.calls)
		})
	}
}

func TestNewConsumer_DefaultPrefetch(t *testing.T) {
	c := NewConsumer(Config{}, &countingRefresher{}, nopLogger{})
	assert.Equal(t, defaultPrefetch, c.cfg.Prefetch)
}

func TestRun_NotConnected(t *testing.T) {
	c := NewConsumer(Config{}, &countingRefresher{}, nopLogger{})
	require.ErrorIs(t, c.Run(context.Background()), ErrNotConnected)
	assert.NoError(t, c.Close())
}
