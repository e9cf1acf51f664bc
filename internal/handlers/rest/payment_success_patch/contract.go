//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_success_patch_test
package payment_success_patch

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
	Reconcile(ctx context.Context, actor entities.Actor, sessionID string) (*entities.PaymentConfirmation, error)
}
