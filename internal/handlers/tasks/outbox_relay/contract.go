//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_relay_test
package outbox_relay

import (
	"context"

	"github.com/IBM/sarama"

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

type Outbox interface {
	FetchUnpublished(ctx context.Context, limit int) ([]entities.OutboxMessage, error)
	MarkPublished(ctx context.Context, ids []int64) error
	Backlog(ctx context.Context) (int64, error)
}

type Producer interface {
	SendMessages(msgs []*sarama.ProducerMessage) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
