package domain

// Field is a bookable resource of a store.
type Field struct {
	ID           string
	Name         string
	StoreID      string
	SportID      string
	DefaultPrice int64
	OpenTime     string // HH:MM
	CloseTime    string // HH:MM, "00:00" or <= OpenTime means midnight
	Bookings     []BookedInterval
}

// FieldIDs returns the ids of fields in order.
func FieldIDs(fields []Field) []string {
	ids := make([]string, len(fields))
	for i := range fields {
		ids[i] = fields[i].ID
	}
	return ids
}
