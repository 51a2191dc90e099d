package http

import (
	"net/http"

	"github.com/MKhiriev/go-shortener-users/internal/app"
	"github.com/MKhiriev/go-shortener-users/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Get("/", h.home)
	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Route("/users", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/signup", h.signUp)
			r.Post("/login", h.login)
			r.Post("/forgot-password", h.forgotPassword)
			r.Post("/reset-password/{token}", h.resetPassword)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/stats", h.userStats)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	return router
}

// notFound answers both unknown paths and unsupported methods.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
}
