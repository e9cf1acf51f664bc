package order

import "time"

type OrderDB struct {
	ID              string
	BuyerID         string
	BuyerEmail      string
	BuyerName       string
	ProductID       string
	ProductTitle    string
	ProductCategory string
	ManagerID       string
	UnitPrice       string
	Quantity        int64
	TotalPrice      string
	DeliveryAddress string
	ContactNumber   string
	Notes           string
	PaymentMethod   string
	PaymentStatus   string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ApprovedAt      *time.Time
}

type TrackingDB struct {
	ID        int64
	OrderID   string
	Status    string
	Location  string
	Note      string
	CreatedAt time.Time
}
