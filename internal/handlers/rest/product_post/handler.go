package product_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

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

	var productCreateDTO dto.ProductCreate
	if err := json.NewDecoder(r.Body).Decode(&productCreateDTO); err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	price, err := decimal.NewFromString(productCreateDTO.Price)
	if err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, fmt.Errorf("invalid price %q", productCreateDTO.Price))
		return
	}

	productModify := entities.ProductModify{
		ManagerID:            productCreateDTO.ManagerId,
		Title:                &productCreateDTO.Title,
		Description:          productCreateDTO.Description,
		Category:             &productCreateDTO.Category,
		Price:                &price,
		MinimumOrderQuantity: &productCreateDTO.MinimumOrderQuantity,
		AvailableQuantity:    &productCreateDTO.AvailableQuantity,
		PaymentMethods:       converters.PaymentMethodsFromDTO(productCreateDTO.PaymentMethods),
	}
	if productCreateDTO.Images != nil {
		productModify.Images = *productCreateDTO.Images
	}

	created, err := h.service.CreateProduct(r.Context(), actor, productModify)
	if err != nil {
		var status int
		switch {
		case errors.Is(err, product.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, product.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, product.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusInternalServerError
		}
		respond.Fail(w, h.log, status, err)
		return
	}

	h.log.With(
		logger.NewField("product", created.ID),
		logger.NewField("manager", created.ManagerID),
	).Info("product created")

	if err := respond.JSON(w, http.StatusCreated, converters.ProductToDTO(created)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
