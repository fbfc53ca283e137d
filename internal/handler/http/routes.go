package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. requestTimeout bounds every request; zero disables
// the limit.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/files/{fileID}", h.downloadFile)
		r.Post("/api/files", h.uploadFile)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			r.Get("/api/user/profile", h.profile)
			r.Get("/api/files", h.listFiles)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
