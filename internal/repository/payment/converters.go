package payment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"garmentflow/internal/entities"
)

func SessionToDomain(s *CheckoutSessionDB) (*entities.CheckoutSession, error) {
	amount, err := decimal.NewFromString(s.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", s.Amount, err)
	}

	return &entities.CheckoutSession{
		ID:        s.ID,
		OrderID:   s.OrderID,
		BuyerID:   s.BuyerID,
		Amount:    amount,
		Currency:  s.Currency,
		URL:       s.URL,
		Status:    entities.CheckoutSessionStatus(s.Status),
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}, nil
}

func ConfirmationToDomain(c *PaymentConfirmationDB) (*entities.PaymentConfirmation, error) {
	amount, err := decimal.NewFromString(c.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", c.Amount, err)
	}

	return &entities.PaymentConfirmation{
		TransactionID: c.TransactionID,
		OrderID:       c.OrderID,
		SessionID:     c.SessionID,
		Amount:        amount,
		Currency:      c.Currency,
		PaidAt:        c.PaidAt,
	}, nil
}
