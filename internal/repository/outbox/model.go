package outbox

import "time"

// EventEnvelope - формат сообщения в топике заказов.
type EventEnvelope struct {
	EventID    string       `json:"event_id"`
	EventType  string       `json:"event_type"`
	OccurredAt time.Time    `json:"occurred_at"`
	Payload    EventPayload `json:"payload"`
}

type EventPayload struct {
	OrderID       string           `json:"order_id"`
	BuyerID       string           `json:"buyer_id"`
	ManagerID     string           `json:"manager_id"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"payment_status"`
	Tracking      *TrackingPayload `json:"tracking,omitempty"`
}

type TrackingPayload struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
