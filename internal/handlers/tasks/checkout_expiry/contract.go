//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_expiry_test
package checkout_expiry

import (
	"context"

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
	ExpireSessions(ctx context.Context) (int64, error)
}
