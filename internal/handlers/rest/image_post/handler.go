package image_post

import (
	"errors"
	"fmt"
	"net/http"

	"garmentflow/internal/generated/dto"
	"garmentflow/internal/pkg/auth"
	"garmentflow/internal/pkg/respond"
	"garmentflow/internal/service/product"
	"garmentflow/pkg/logger"
)

const (
	formField = "image"

	// лимит размера файла, остальное отсекается до чтения формы
	maxImageSize = 10 << 20
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

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.log.With(logger.NewField("error", err)).Warn("remove multipart temp files")
		}
	}()

	file, header, err := r.FormFile(formField)
	if err != nil {
		respond.Fail(w, h.log, http.StatusBadRequest, fmt.Errorf("form field %q is required", formField))
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(r.Context(), actor, header.Filename, file)
	if err != nil {
		var status int
		switch {
		case errors.Is(err, product.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, product.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, product.ErrUpstreamUnavailable), errors.Is(err, product.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusInternalServerError
		}
		respond.Fail(w, h.log, status, err)
		return
	}

	if err := respond.JSON(w, http.StatusCreated, dto.ImageUpload{Url: url}); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
