package respond

import (
	"encoding/json"
	"net/http"

	"garmentflow/internal/generated/dto"
	"garmentflow/pkg/logger"
)

func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Error пишет тело ошибки. Для 5xx текст причины не раскрывается.
func Error(w http.ResponseWriter, status int, err error) error {
	message := http.StatusText(status)
	if err != nil && status < http.StatusInternalServerError {
		message = err.Error()
	}

	return JSON(w, status, dto.Error{
		Code:    status,
		Message: message,
	})
}

type failLogger interface {
	With(fields ...logger.Field) logger.Logger
}

// Fail пишет ошибку клиенту. 5xx дополнительно логируются с причиной.
func Fail(w http.ResponseWriter, log failLogger, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.With(
			logger.NewField("status", status),
			logger.NewField("error", err),
		).Error("request failed")
	}

	if encodeErr := Error(w, status, err); encodeErr != nil {
		log.With(logger.NewField("error", encodeErr)).Error("encode JSON response")
	}
}
