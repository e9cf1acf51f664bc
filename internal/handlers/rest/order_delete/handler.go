package order_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"garmentflow/internal/pkg/auth"
	"garmentflow/internal/pkg/respond"
	"garmentflow/internal/service/order"
	"garmentflow/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.Fail(w, h.log, http.StatusUnauthorized, auth.ErrInvalidToken)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.service.CancelOrder(r.Context(), actor, id); err != nil {
		var status int
		switch {
		case errors.Is(err, order.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, order.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, order.ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, order.ErrInvalidTransition):
			status = http.StatusConflict
		case errors.Is(err, order.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusInternalServerError
		}
		respond.Fail(w, h.log, status, err)
		return
	}

	h.log.With(
		logger.NewField("order", id),
		logger.NewField("actor", actor.ID),
	).Info("order cancelled")

	w.WriteHeader(http.StatusNoContent)
}
