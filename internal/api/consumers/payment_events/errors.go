package payment_events

import "errors"

var (
	ErrMalformedEvent = errors.New("malformed payment event")
	ErrNotConnected   = errors.New("consumer is not connected")
)
