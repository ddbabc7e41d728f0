package payment_events

import "github.com/MoodLink/ArenaAxis-sub000/internal/domain"

// Config параметры подключения к брокеру
type Config struct {
	URL         string
	Exchange    string
	Queue       string
	RoutingKeys []string
	Prefetch    int
	ConsumerTag string
}

// PaymentEvent событие оплаты заказа
type PaymentEvent struct {
	OrderID string               `json:"orderId"`
	StoreID string               `json:"storeId"`
	Status  domain.PaymentStatus `json:"status"`
}
