//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=products_get_test
package products_get

import (
	"context"

	"garmentflow/internal/entities"
	"garmentflow/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
}
