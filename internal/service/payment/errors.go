package payment

import (
	"errors"

	"garmentflow/pkg/tx"
)

var (
	ErrValidation                = errors.New("validation error")
	ErrForbidden                 = errors.New("forbidden")
	ErrOrderNotFound             = errors.New("order not found")
	ErrOrderNotPayable           = errors.New("order is not payable")
	ErrSessionNotFound           = errors.New("checkout session not found")
	ErrConfirmationNotFound      = errors.New("payment confirmation not found")
	ErrAlreadyConfirmed          = errors.New("payment already confirmed")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
	ErrUpstreamUnavailable       = errors.New("payment provider unavailable")

	// ErrStorageUnavailable - база недоступна, запрос можно повторить.
	ErrStorageUnavailable = tx.ErrUnavailable
)
