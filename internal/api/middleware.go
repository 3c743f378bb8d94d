package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"skillswap-backend/internal/auth"
	"skillswap-backend/internal/models"

	"github.com/go-chi/chi/v5/middleware"
)

// contextKey é um tipo privado para evitar colisões de chaves no contexto
type contextKey string

const userContextKey = contextKey("user")

// userFromContext só deve ser usado em rotas atrás do AuthMiddleware
func userFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// AuthMiddleware resolve o token Bearer na conta dona dele e coloca a conta
// no contexto. Token de conta já removida é recusado com 401.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := h.tokenService.Authenticate(r.Header.Get("Authorization"))
		if err != nil {
			h.log.Debug().Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg("autenticação recusada")
			h.respondWithError(w, http.StatusUnauthorized, authErrorMessage(err))
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), userID)
		if err != nil {
			h.respondWithError(w, http.StatusUnauthorized, "session expired or account deleted")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return auth.ErrMissingToken.Error()
	case errors.Is(err, auth.ErrMalformedToken):
		return auth.ErrMalformedToken.Error()
	default:
		return auth.ErrInvalidToken.Error()
	}
}

// requestLogger registra cada requisição no zerolog
func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			evt := h.log.Info()
			if status >= http.StatusInternalServerError {
				evt = h.log.Error()
			}
			evt.
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("requisição HTTP")
		}()

		next.ServeHTTP(ww, r)
	})
}
