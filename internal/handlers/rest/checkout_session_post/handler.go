package checkout_session_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"garmentflow/internal/generated/dto"
	"garmentflow/internal/pkg/auth"
	"garmentflow/internal/pkg/respond"
	"garmentflow/internal/service/payment"
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

	var sessionCreateDTO dto.CheckoutSessionCreate
	if err := json.NewDecoder(r.Body).Decode(&sessionCreateDTO); err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	session, err := h.service.CreateCheckoutSession(r.Context(), actor, sessionCreateDTO.OrderId)
	if err != nil {
		var status int
		switch {
		case errors.Is(err, payment.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, payment.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, payment.ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, payment.ErrOrderNotPayable):
			status = http.StatusConflict
		case errors.Is(err, payment.ErrUpstreamUnavailable), errors.Is(err, payment.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusInternalServerError
		}
		respond.Fail(w, h.log, status, err)
		return
	}

	h.log.With(
		logger.NewField("order", session.OrderID),
		logger.NewField("session", session.ID),
	).Info("checkout session created")

	sessionDTO := dto.CheckoutSession{
		SessionId: session.ID,
		Url:       session.URL,
		ExpiresAt: session.ExpiresAt,
	}
	if err := respond.JSON(w, http.StatusCreated, sessionDTO); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
