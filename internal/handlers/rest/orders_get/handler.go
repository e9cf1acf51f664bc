package orders_get

import (
	"errors"
	"net/http"

	"garmentflow/internal/entities"
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

// ServeHTTP: ownerId фильтрует по покупателю, managerId - по владельцу товара.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.Fail(w, h.log, http.StatusUnauthorized, auth.ErrInvalidToken)
		return
	}

	query := r.URL.Query()
	var filter entities.OrderFilter
	if ownerID := query.Get("ownerId"); ownerID != "" {
		filter.BuyerID = &ownerID
	}
	if managerID := query.Get("managerId"); managerID != "" {
		filter.ManagerID = &managerID
	}
	if status := query.Get("status"); status != "" {
		orderStatus := entities.OrderStatus(status)
		filter.Status = &orderStatus
	}

	orders, err := h.service.ListOrders(r.Context(), actor, filter)
	if err != nil {
		var status int
		switch {
		case errors.Is(err, order.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, order.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, order.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusInternalServerError
		}
		respond.Fail(w, h.log, status, err)
		return
	}

	if err := respond.JSON(w, http.StatusOK, converters.OrdersToDTO(orders)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
