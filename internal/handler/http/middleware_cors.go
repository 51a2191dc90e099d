package http

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// withCORS allows browser calls from the configured origins. The frontend
// sends the session token in x-auth-token and may read X-Trace-ID.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(h.cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", authTokenHeader, traceIDHeader}),
		handlers.ExposedHeaders([]string{traceIDHeader}),
	)(next)
}
