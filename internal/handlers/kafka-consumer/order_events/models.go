package order_events

import "time"

// orderEvent - часть конверта из топика заказов, нужная для сигнала.
type orderEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    struct {
		OrderID       string `json:"order_id"`
		Status        string `json:"status"`
		PaymentStatus string `json:"payment_status"`
	} `json:"payload"`
}

// refreshSignal уходит подписчикам SSE. Это повод перечитать заказ,
// а не его состояние, поэтому идентификаторы участников не передаются.
type refreshSignal struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
