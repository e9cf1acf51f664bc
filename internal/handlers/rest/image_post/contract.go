//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=image_post_test
package image_post

import (
	"context"
	"io"

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
	UploadImage(ctx context.Context, actor entities.Actor, filename string, image io.Reader) (string, error)
}
