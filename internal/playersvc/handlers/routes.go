package handlers

import (
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/players", h.ListPlayers)
		r.Post("/players", h.CreatePlayer)
		r.Post("/network", h.NetworkRelations)
		r.Post("/sample-data", h.SampleData)
	})

	r.Get("/health", h.HealthHandler)
}
