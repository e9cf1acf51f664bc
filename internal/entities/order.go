package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID string

	BuyerID    string
	BuyerEmail string
	BuyerName  string

	// снимок товара на момент заказа, дальше не пересчитывается
	ProductID       string
	ProductTitle    string
	ProductCategory string
	ManagerID       string
	UnitPrice       decimal.Decimal
	Quantity        int64
	TotalPrice      decimal.Decimal

	DeliveryAddress string
	ContactNumber   string
	Notes           string

	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Status        OrderStatus

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time

	// история в порядке добавления
	Tracking []TrackingEvent
}

// LatestTracking возвращает последнее событие истории или nil.
// Метка события не обязана совпадать со Status заказа.
func (o *Order) LatestTracking() *TrackingEvent {
	if len(o.Tracking) == 0 {
		return nil
	}
	return &o.Tracking[len(o.Tracking)-1]
}

type OrderCreate struct {
	ProductID       string
	Quantity        int64
	DeliveryAddress string
	ContactNumber   string
	Notes           string
	PaymentMethod   PaymentMethod
}

type OrderFilter struct {
	BuyerID   *string
	ManagerID *string
	Status    *OrderStatus
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderApproved  OrderStatus = "Approved"
	OrderRejected  OrderStatus = "Rejected"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderRejected, OrderShipped, OrderDelivered:
		return true
	default:
		return false
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderRejected || s == OrderDelivered
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentStripe         PaymentMethod = "Stripe"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	return m == PaymentCashOnDelivery || m == PaymentStripe
}
