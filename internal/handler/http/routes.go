package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.Post("/api/sync/", h.triggerSync)
		r.Get("/api/sync/status", h.syncStatus)
	})

	router.Method("GET", "/metrics", promhttp.Handler())

	return router
}
