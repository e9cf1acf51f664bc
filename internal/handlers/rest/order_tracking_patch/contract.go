//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_tracking_patch_test
package order_tracking_patch

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
	AppendTracking(ctx context.Context, actor entities.Actor, id string, tracking entities.TrackingCreate) (*entities.TrackingEvent, error)
}
