package outbox_relay

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"garmentflow/pkg/logger"
)

// OutboxRelay переносит события заказов из outbox в Kafka. Пачка читается
// и помечается отправленной в одной транзакции: если Kafka не приняла пачку,
// транзакция откатывается и события уйдут на следующем проходе.
// Доставка at-least-once, потребители идемпотентны.
type OutboxRelay struct {
	log       handlerLogger
	outbox    Outbox
	producer  Producer
	txManager TxManager
	topic     string
	batchSize int
	interval  time.Duration
}

func NewOutboxRelay(
	log handlerLogger,
	outbox Outbox,
	producer Producer,
	txManager TxManager,
	topic string,
	batchSize int,
	interval time.Duration,
) *OutboxRelay {
	return &OutboxRelay{
		log:       log,
		outbox:    outbox,
		producer:  producer,
		txManager: txManager,
		topic:     topic,
		batchSize: batchSize,
		interval:  interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	// разбираем пачками, пока outbox не опустеет или не кончится время прохода
	for {
		relayed, err := o.relayBatch(ctxWithTimeout)
		if err != nil {
			return err
		}
		if relayed < o.batchSize {
			break
		}
	}

	backlog, err := o.outbox.Backlog(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("outbox backlog: %w", err)
	}
	OutboxBacklog.Set(float64(backlog))

	return nil
}

func (o *OutboxRelay) relayBatch(ctx context.Context) (int, error) {
	var relayed int

	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		messages, err := o.outbox.FetchUnpublished(ctx, o.batchSize)
		if err != nil {
			return fmt.Errorf("fetch outbox: %w", err)
		}
		if len(messages) == 0 {
			return nil
		}

		producerMessages := make([]*sarama.ProducerMessage, 0, len(messages))
		ids := make([]int64, 0, len(messages))
		for _, m := range messages {
			producerMessages = append(producerMessages, &sarama.ProducerMessage{
				Topic: o.topic,
				Key:   sarama.StringEncoder(m.Key),
				Value: sarama.ByteEncoder(m.Payload),
				Headers: []sarama.RecordHeader{
					{Key: []byte("event_id"), Value: []byte(m.EventID)},
				},
			})
			ids = append(ids, m.ID)
		}

		if err := o.producer.SendMessages(producerMessages); err != nil {
			return fmt.Errorf("send outbox batch: %w", err)
		}

		if err := o.outbox.MarkPublished(ctx, ids); err != nil {
			return fmt.Errorf("mark outbox published: %w", err)
		}

		relayed = len(messages)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if relayed > 0 {
		OutboxPublishedTotal.Add(float64(relayed))
		o.log.With(
			logger.NewField("events", relayed),
			logger.NewField("topic", o.topic),
		).Debug("outbox relayed")
	}

	return relayed, nil
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
