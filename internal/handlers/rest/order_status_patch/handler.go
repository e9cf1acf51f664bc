package order_status_patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"garmentflow/internal/entities"
	"garmentflow/internal/generated/dto"
	"garmentflow/internal/handlers/rest/converters"
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

	var statusUpdateDTO dto.OrderStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO); err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	id := mux.Vars(r)["id"]
	target := entities.OrderStatus(statusUpdateDTO.Status)

	updated, err := h.service.ChangeStatus(r.Context(), actor, id, target)
	if err != nil {
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
		logger.NewField("order", updated.ID),
		logger.NewField("status", updated.Status.String()),
		logger.NewField("actor", actor.ID),
		logger.NewField("role", actor.Role.String()),
	).Info("order status changed")

	if err := respond.JSON(w, http.StatusOK, converters.OrderToDTO(updated)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
