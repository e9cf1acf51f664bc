//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_get_test
package product_get

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
	GetProduct(ctx context.Context, id string) (*entities.Product, error)
}
