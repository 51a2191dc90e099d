package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shortener-users/internal/app"
	"github.com/MKhiriev/go-shortener-users/internal/logger"
	"github.com/MKhiriev/go-shortener-users/internal/service"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
)

// authTokenHeader carries the session token issued by /users/login.
const authTokenHeader = "X-Auth-Token"

// auth is an HTTP middleware that enforces token-based authentication.
//
// It reads the token from the "x-auth-token" header, validates it via
// [service.AuthService.ParseToken] and, on success, stores the user's ID in
// the request context under [utils.UserIDCtxKey] before delegating to the
// next handler.
//
// Otherwise the request is rejected with 401 and one of the messages
// "token missing", "token expired" or "invalid token". The next handler
// never runs.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(authTokenHeader)
		if tokenString == "" {
			log.Info().Msg("request without auth token")
			utils.WriteMessage(w, app.MsgTokenMissing, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Info().Msg("token expired")
				utils.WriteMessage(w, app.MsgTokenExpired, http.StatusUnauthorized)
			default:
				log.Info().AnErr("reason", err).Msg("invalid token")
				utils.WriteMessage(w, app.MsgTokenInvalid, http.StatusUnauthorized)
			}
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.Claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
