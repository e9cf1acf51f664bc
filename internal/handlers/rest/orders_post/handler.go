package orders_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

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

	var orderCreateDTO dto.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&orderCreateDTO); err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	orderCreate := entities.OrderCreate{
		ProductID:       orderCreateDTO.ProductId,
		Quantity:        orderCreateDTO.Quantity,
		DeliveryAddress: orderCreateDTO.DeliveryAddress,
		ContactNumber:   orderCreateDTO.ContactNumber,
		PaymentMethod:   entities.PaymentMethod(orderCreateDTO.PaymentMethod),
	}
	if orderCreateDTO.Notes != nil {
		orderCreate.Notes = *orderCreateDTO.Notes
	}

	created, err := h.service.CreateOrder(r.Context(), actor, orderCreate)
	if err != nil {
		var status int
		switch {
		case errors.Is(err, order.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, order.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, order.ErrProductNotFound):
			status = http.StatusNotFound
		case errors.Is(err, order.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusInternalServerError
		}
		respond.Fail(w, h.log, status, err)
		return
	}

	h.log.With(
		logger.NewField("order", created.ID),
		logger.NewField("buyer", actor.ID),
	).Info("order created")

	if err := respond.JSON(w, http.StatusCreated, converters.OrderToDTO(created)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
