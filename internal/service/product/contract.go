//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_test
package product

import (
	"context"
	"io"

	"garmentflow/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
	Update(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
	GetByID(ctx context.Context, id string) (*entities.Product, error)
	List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
}

type ImageHost interface {
	Upload(ctx context.Context, filename string, image io.Reader) (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
