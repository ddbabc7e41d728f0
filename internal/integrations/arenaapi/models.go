package arenaapi

import (
	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
)

// FieldWithStatus поле со списком бронирований на дату
type FieldWithStatus struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	StoreID      string       `json:"storeId"`
	SportID      string       `json:"sportId"`
	DefaultPrice int64        `json:"defaultPrice"`
	StartTime    string       `json:"startTime"` // время открытия HH:MM
	EndTime      string       `json:"endTime"`   // время закрытия HH:MM
	StatusField  []StatusItem `json:"statusField"`
}

// StatusItem одно бронирование поля
type StatusItem struct {
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	StatusPayment string `json:"statusPayment"`
	Price         int64  `json:"price"`
	UserID        string `json:"userId"`
	CreatedAt     string `json:"createdAt"`
}

// Order заказ из бэкенда
type Order struct {
	ID           string        `json:"_id"`
	UserID       string        `json:"userId"`
	Address      string        `json:"address"`
	CreatedAt    string        `json:"createdAt"`
	OrderDetails []OrderDetail `json:"orderDetails"`
}

// OrderDetail одна позиция заказа
type OrderDetail struct {
	FieldID   string `json:"fieldId"`
	StartTime string `json:"startTime"`
	Price     int64  `json:"price"`
}

// CreateFieldPricingRequest тело запроса на создание правила по дню недели
type CreateFieldPricingRequest struct {
	FieldID      string `json:"fieldId"`
	DayOfWeek    string `json:"dayOfWeek"`
	StartAt      string `json:"startAt"`
	EndAt        string `json:"endAt"`
	SpecialPrice int64  `json:"specialPrice"`
}

// CreateSpecialDatePricingRequest тело запроса на создание правила на дату
type CreateSpecialDatePricingRequest struct {
	FieldID      string `json:"fieldId"`
	StartAt      string `json:"startAt"` // YYYY-MM-DD HH:MM
	EndAt        string `json:"endAt"`   // YYYY-MM-DD HH:MM
	SpecialPrice int64  `json:"specialPrice"`
}

// ErrorResponse модель ошибки от бэкенда
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// ToDomain конвертирует поле бэкенда в доменную модель
func (f *FieldWithStatus) ToDomain() domain.Field {
	bookings := make([]domain.BookedInterval, len(f.StatusField))
	for i, s := range f.StatusField {
		bookings[i] = domain.BookedInterval{
			FieldID:       f.ID,
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			StatusPayment: domain.PaymentStatus(s.StatusPayment),
			Price:         s.Price,
			UserID:        s.UserID,
			CreatedAt:     s.CreatedAt,
		}
	}

	return domain.Field{
		ID:           f.ID,
		Name:         f.Name,
		StoreID:      f.StoreID,
		SportID:      f.SportID,
		DefaultPrice: f.DefaultPrice,
		OpenTime:     f.StartTime,
		CloseTime:    f.EndTime,
		Bookings:     bookings,
	}
}

// ToDomain конвертирует заказ бэкенда в доменную модель
func (o *Order) ToDomain() domain.Order {
	details := make([]domain.OrderDetail, len(o.OrderDetails))
	for i, d := range o.OrderDetails {
		details[i] = domain.OrderDetail{
			FieldID:   d.FieldID,
			StartTime: d.StartTime,
			Price:     d.Price,
		}
	}

	return domain.Order{
		ID:        o.ID,
		UserID:    o.UserID,
		Address:   o.Address,
		CreatedAt: o.CreatedAt,
		Details:   details,
	}
}
