package auth

import (
	"errors"
	"net/http"
	"strings"

	"garmentflow/internal/pkg/auth"
	"garmentflow/internal/pkg/respond"
	"garmentflow/pkg/logger"
)

const bearerPrefix = "Bearer "

var errMissingToken = errors.New("missing bearer token")

// Middleware проверяет bearer токен и кладет actor в контекст запроса.
func Middleware(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				unauthorized(w, log, errMissingToken)
				return
			}

			actor, err := verifier.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Debug("token rejected")
				unauthorized(w, log, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}

func unauthorized(w http.ResponseWriter, log handlerLogger, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="garmentflow"`)
	if err := respond.Error(w, http.StatusUnauthorized, err); err != nil {
		log.With(logger.NewField("error", err)).Error("encode JSON response")
	}
}
