package orderevents

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const subscriberBuffer = 16

// Bus раздает сигналы об изменении заказа между репликами API через
// Redis pub/sub: один канал на заказ. Доставка best-effort, пропущенный
// сигнал клиент компенсирует перечитыванием заказа.
type Bus struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *Bus {
	return &Bus{
		client: client,
		prefix: prefix,
	}
}

// Ping нужен readiness-проверке воркера.
func (b *Bus) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *Bus) channel(orderID string) string {
	return b.prefix + orderID
}

func (b *Bus) Publish(ctx context.Context, orderID string, payload []byte) error {
	if err := b.client.Publish(ctx, b.channel(orderID), payload).Err(); err != nil {
		return fmt.Errorf("publish order %s event: %w", orderID, err)
	}
	return nil
}

// Subscribe возвращает канал сигналов заказа. Канал закрывается при отмене
// ctx или обрыве подписки. Медленный читатель блокирует только свою подписку.
func (b *Bus) Subscribe(ctx context.Context, orderID string) (<-chan []byte, error) {
	pubsub := b.client.Subscribe(ctx, b.channel(orderID))

	// Receive дожидается подтверждения подписки от сервера
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to order %s events: %w", orderID, err)
	}

	out := make(chan []byte, subscriberBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
