package payment

import "time"

type CheckoutSessionDB struct {
	ID        string
	OrderID   string
	BuyerID   string
	Amount    string
	Currency  string
	URL       string
	Status    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type PaymentConfirmationDB struct {
	TransactionID string
	SessionID     string
	OrderID       string
	Amount        string
	Currency      string
	PaidAt        time.Time
}
