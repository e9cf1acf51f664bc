package products_get

import (
	"errors"
	"net/http"

	"garmentflow/internal/entities"
	"garmentflow/internal/handlers/rest/converters"
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
	query := r.URL.Query()

	var filter entities.ProductFilter
	if category := query.Get("category"); category != "" {
		filter.Category = &category
	}
	if managerID := query.Get("managerId"); managerID != "" {
		filter.ManagerID = &managerID
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, product.ErrStorageUnavailable) {
			status = http.StatusServiceUnavailable
		}
		respond.Fail(w, h.log, status, err)
		return
	}

	if err := respond.JSON(w, http.StatusOK, converters.ProductsToDTO(products)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
