package domain

// PaymentStatus is the payment state of a reservation as reported by the backend.
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "PAID"
	PaymentPending  PaymentStatus = "PENDING"
	PaymentCanceled PaymentStatus = "CANCELLED"
)

// BookedInterval is one reservation on a field for a given date.
// StartTime and EndTime are ISO-looking strings holding wall-clock local
// time; they must be read textually, never through a time zone.
type BookedInterval struct {
	FieldID       string
	StartTime     string
	EndTime       string
	StatusPayment PaymentStatus
	Price         int64
	UserID        string
	CreatedAt     string
}

// IsPaid returns true if the reservation occupies its slots
func (b *BookedInterval) IsPaid() bool {
	return b.StatusPayment == PaymentPaid
}
