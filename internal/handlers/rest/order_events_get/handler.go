package order_events_get

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"garmentflow/internal/pkg/auth"
	"garmentflow/internal/pkg/respond"
	"garmentflow/internal/service/order"
	"garmentflow/pkg/logger"
)

const defaultHeartbeat = 15 * time.Second

var errStreamingUnsupported = errors.New("streaming unsupported")

// Handler отдает уведомления об изменениях заказа как Server-Sent Events.
// Уведомление - только сигнал перечитать заказ, не его состояние.
type Handler struct {
	log        handlerLogger
	service    Service
	subscriber Subscriber
	heartbeat  time.Duration
}

func New(log handlerLogger, service Service, subscriber Subscriber) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		service:    service,
		subscriber: subscriber,
		heartbeat:  defaultHeartbeat,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.Fail(w, h.log, http.StatusUnauthorized, auth.ErrInvalidToken)
		return
	}

	id := mux.Vars(r)["id"]

	// подписка разрешена тем, кто может читать заказ
	if _, err := h.service.GetOrder(r.Context(), actor, id); err != nil {
		var status int
		switch {
		case errors.Is(err, order.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, order.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, order.ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, order.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusInternalServerError
		}
		respond.Fail(w, h.log, status, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respond.Fail(w, h.log, http.StatusInternalServerError, errStreamingUnsupported)
		return
	}

	events, err := h.subscriber.Subscribe(r.Context(), id)
	if err != nil {
		respond.Fail(w, h.log, http.StatusServiceUnavailable, fmt.Errorf("subscribe to order events: %w", err))
		return
	}

	streamLog := h.log.With(
		logger.NewField("order", id),
		logger.NewField("actor", actor.ID),
	)
	streamLog.Debug("order events stream opened")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return
	}
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			streamLog.Debug("order events stream closed by client")
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case payload, ok := <-events:
			if !ok {
				streamLog.Debug("order events subscription ended")
				return
			}
			if _, err := fmt.Fprintf(w, "event: order\ndata: %s\n\n", payload); err != nil {
				streamLog.With(logger.NewField("error", err)).Warn("write order event")
				return
			}
			flusher.Flush()
		}
	}
}
