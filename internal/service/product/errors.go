package product

import (
	"errors"

	"garmentflow/pkg/tx"
)

var (
	ErrValidation          = errors.New("validation error")
	ErrForbidden           = errors.New("forbidden")
	ErrProductNotFound     = errors.New("product not found")
	ErrUpstreamUnavailable = errors.New("image host unavailable")

	// ErrStorageUnavailable - база недоступна, запрос можно повторить.
	ErrStorageUnavailable = tx.ErrUnavailable
)
