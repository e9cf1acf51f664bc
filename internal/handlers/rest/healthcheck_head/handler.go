package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = time.Second

// Handler - readiness: 503 во время остановки или если база не отвечает.
type Handler struct {
	isShuttingDown *atomic.Bool
	database       Pinger
}

func New(isShuttingDown *atomic.Bool, database Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		database:       database,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.database.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
