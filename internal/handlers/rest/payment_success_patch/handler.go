package payment_success_patch

import (
	"errors"
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

// ServeHTTP идемпотентен: повторный вызов возвращает то же подтверждение.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.Fail(w, h.log, http.StatusUnauthorized, auth.ErrInvalidToken)
		return
	}

	sessionID := r.URL.Query().Get("session_id")

	confirmation, err := h.service.Reconcile(r.Context(), actor, sessionID)
	if err != nil {
		var status int
		switch {
		case errors.Is(err, payment.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, payment.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, payment.ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, payment.ErrAlreadyConfirmed):
			status = http.StatusConflict
		case errors.Is(err, payment.ErrPaymentVerificationFailed):
			status = http.StatusPaymentRequired
		case errors.Is(err, payment.ErrUpstreamUnavailable), errors.Is(err, payment.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusInternalServerError
		}
		respond.Fail(w, h.log, status, err)
		return
	}

	confirmationDTO := dto.PaymentConfirmation{
		TransactionId: confirmation.TransactionID,
		OrderId:       confirmation.OrderID,
		SessionId:     confirmation.SessionID,
		Amount:        confirmation.Amount.StringFixed(2),
		Currency:      confirmation.Currency,
		PaidAt:        confirmation.PaidAt,
	}
	if err := respond.JSON(w, http.StatusOK, confirmationDTO); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
