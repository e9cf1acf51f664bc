package order

import (
	"errors"

	"garmentflow/pkg/tx"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrForbidden         = errors.New("forbidden")
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrStorageUnavailable - база недоступна, запрос можно повторить.
	ErrStorageUnavailable = tx.ErrUnavailable
)
