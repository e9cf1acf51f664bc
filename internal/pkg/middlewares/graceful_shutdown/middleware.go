package graceful_shutdown

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"garmentflow/internal/pkg/respond"
)

var errShuttingDown = errors.New("service is shutting down")

// Middleware отклоняет новые запросы, когда сервис уже останавливается.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					_ = respond.Error(w, http.StatusServiceUnavailable, errShuttingDown)
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
