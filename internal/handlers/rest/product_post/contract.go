//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=product_post_test
package product_post

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
	CreateProduct(ctx context.Context, actor entities.Actor, productModify entities.ProductModify) (*entities.Product, error)
}
