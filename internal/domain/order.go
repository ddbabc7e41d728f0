package domain

// Order is a paid checkout that may cover several slots on several fields.
type Order struct {
	ID        string
	UserID    string
	Address   string
	CreatedAt string
	Details   []OrderDetail
}

// OrderDetail is one booked slot of an order.
type OrderDetail struct {
	FieldID   string
	StartTime string // ISO-looking wall-clock time
	Price     int64
}
