package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"garmentflow/pkg/logger"
)

type Handler struct {
	publisher                Publisher
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, publisher Publisher, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		publisher:                publisher,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing пересылает одно событие подписчикам заказа.
// Возвращает true, если нужно прервать ConsumeClaim без коммита offset'а.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event orderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil || event.Payload.OrderID == "" {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.Payload.OrderID),
		logger.NewField("event", event.EventType),
		logger.NewField("offset", message.Offset),
	)

	signal, err := json.Marshal(refreshSignal{
		EventID:       event.EventID,
		EventType:     event.EventType,
		OrderID:       event.Payload.OrderID,
		Status:        event.Payload.Status,
		PaymentStatus: event.Payload.PaymentStatus,
		OccurredAt:    event.OccurredAt,
	})
	if err != nil {
		msgLog.With(logger.NewField("error", err)).Error("order events handler failed to encode signal")
		sess.MarkMessage(message, "")
		return false
	}

	if err := h.publisher.Publish(ctx, event.Payload.OrderID, signal); err != nil {
		if errors.Is(err, context.Canceled) || sess.Context().Err() != nil {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order events handler context cancelled, message will be reprocessed")
			return true
		}

		// сигнал best-effort: клиент перечитает заказ при переподключении
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order events handler failed to publish signal")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Debug("order events: published")
	sess.MarkMessage(message, "")
	return false
}
