package product_patch

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"garmentflow/internal/entities"
	"garmentflow/internal/generated/dto"
	"garmentflow/internal/handlers/rest/converters"
	"garmentflow/internal/pkg/auth"
	"garmentflow/internal/pkg/respond"
	"garmentflow/internal/service/product"
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

	var productUpdateDTO dto.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&productUpdateDTO); err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	// опционные поля
	productModify := entities.ProductModify{
		Title:                productUpdateDTO.Title,
		Description:          productUpdateDTO.Description,
		Category:             productUpdateDTO.Category,
		MinimumOrderQuantity: productUpdateDTO.MinimumOrderQuantity,
		AvailableQuantity:    productUpdateDTO.AvailableQuantity,
	}
	if productUpdateDTO.Price != nil {
		price, err := decimal.NewFromString(*productUpdateDTO.Price)
		if err != nil {
			respond.Fail(w, h.log, http.StatusBadRequest, fmt.Errorf("invalid price %q", *productUpdateDTO.Price))
			return
		}
		productModify.Price = &price
	}
	if productUpdateDTO.PaymentMethods != nil {
		productModify.PaymentMethods = converters.PaymentMethodsFromDTO(*productUpdateDTO.PaymentMethods)
	}
	if productUpdateDTO.Images != nil {
		productModify.Images = *productUpdateDTO.Images
	}

	updated, err := h.service.UpdateProduct(r.Context(), actor, mux.Vars(r)["id"], productModify)
	if err != nil {
		var status int
		switch {
		case errors.Is(err, product.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, product.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, product.ErrProductNotFound):
			status = http.StatusNotFound
		case errors.Is(err, product.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusInternalServerError
		}
		respond.Fail(w, h.log, status, err)
		return
	}

	if err := respond.JSON(w, http.StatusOK, converters.ProductToDTO(updated)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
