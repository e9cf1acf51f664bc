//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"time"

	"garmentflow/internal/entities"
)

type Repository interface {
	CreateSession(ctx context.Context, session entities.CheckoutSession) (*entities.CheckoutSession, error)
	GetSession(ctx context.Context, id string) (*entities.CheckoutSession, error)
	GetSessionForUpdate(ctx context.Context, id string) (*entities.CheckoutSession, error)
	GetOpenSessionByOrder(ctx context.Context, orderID string, now time.Time) (*entities.CheckoutSession, error)
	CompleteSession(ctx context.Context, id string) error
	ExpireSessions(ctx context.Context, now time.Time) (int64, error)

	GetConfirmationBySession(ctx context.Context, sessionID string) (*entities.PaymentConfirmation, error)
	GetConfirmationByOrder(ctx context.Context, orderID string) (*entities.PaymentConfirmation, error)
	CreateConfirmation(ctx context.Context, confirmation entities.PaymentConfirmation) (*entities.PaymentConfirmation, error)
}

type OrderRepository interface {
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error)
	MarkPaid(ctx context.Context, id string) (*entities.Order, error)
}

type CheckoutProvider interface {
	CreateSession(ctx context.Context, request entities.CheckoutRequest) (*entities.ProviderCheckout, error)
	GetSession(ctx context.Context, sessionID string) (*entities.ProviderSessionStatus, error)
}

type Outbox interface {
	Add(ctx context.Context, event entities.OrderEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
