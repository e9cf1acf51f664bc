package product_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
	productEntity, err := h.service.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		var status int
		switch {
		case errors.Is(err, product.ErrValidation):
			status = http.StatusBadRequest
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

	if err := respond.JSON(w, http.StatusOK, converters.ProductToDTO(productEntity)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
