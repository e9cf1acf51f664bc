package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutSessionStatus string

const (
	CheckoutOpen      CheckoutSessionStatus = "open"
	CheckoutCompleted CheckoutSessionStatus = "completed"
	CheckoutExpired   CheckoutSessionStatus = "expired"
)

func (s CheckoutSessionStatus) String() string {
	return string(s)
}

// CheckoutSession - ожидающее намерение оплаты, созданное у провайдера.
type CheckoutSession struct {
	ID        string
	OrderID   string
	BuyerID   string
	Amount    decimal.Decimal
	Currency  string
	URL       string
	Status    CheckoutSessionStatus
	ExpiresAt time.Time
	CreatedAt time.Time
}

type PaymentConfirmation struct {
	TransactionID string
	OrderID       string
	SessionID     string
	Amount        decimal.Decimal
	Currency      string
	PaidAt        time.Time
}

type CheckoutRequest struct {
	OrderID       string
	ProductTitle  string
	UnitAmount    decimal.Decimal
	Quantity      int64
	Currency      string
	CustomerEmail string
}

type ProviderCheckout struct {
	SessionID string
	URL       string
	ExpiresAt time.Time
}

type ProviderSessionStatus struct {
	SessionID     string
	Paid          bool
	TransactionID string
	AmountTotal   decimal.Decimal
	Currency      string
}
