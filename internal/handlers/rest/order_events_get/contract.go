//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_events_get_test
package order_events_get

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
	GetOrder(ctx context.Context, actor entities.Actor, id string) (*entities.Order, error)
}

// Subscriber отдает канал уведомлений по заказу. Канал закрывается
// после отмены ctx или потери подписки.
type Subscriber interface {
	Subscribe(ctx context.Context, orderID string) (<-chan []byte, error)
}
