//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_limiter_evict_test
package rate_limiter_evict

import "garmentflow/pkg/logger"

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Limiter interface {
	Evict() int
	Len() int
}
