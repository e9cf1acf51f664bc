package entities

import "time"

type OrderEventType string

const (
	EventOrderCreated          OrderEventType = "order.created"
	EventOrderStatusChanged    OrderEventType = "order.status_changed"
	EventOrderTrackingAppended OrderEventType = "order.tracking_appended"
	EventOrderCancelled        OrderEventType = "order.cancelled"
	EventOrderPaymentConfirmed OrderEventType = "order.payment_confirmed"
)

func (t OrderEventType) String() string {
	return string(t)
}

// OrderEvent - сигнал об изменении заказа для подписчиков, не источник истины.
type OrderEvent struct {
	ID            string
	Type          OrderEventType
	OrderID       string
	BuyerID       string
	ManagerID     string
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Tracking      *TrackingEvent
	OccurredAt    time.Time
}

type OutboxMessage struct {
	ID        int64
	EventID   string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}
