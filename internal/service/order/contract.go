//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"garmentflow/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, approvedAt *time.Time) (*entities.Order, error)
	Delete(ctx context.Context, id string) error
	AppendTracking(ctx context.Context, orderID string, tracking entities.TrackingCreate) (*entities.TrackingEvent, error)
}

type ProductService interface {
	GetProduct(ctx context.Context, id string) (*entities.Product, error)
}

type Outbox interface {
	Add(ctx context.Context, event entities.OrderEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
