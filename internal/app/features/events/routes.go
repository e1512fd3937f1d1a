// internal/app/features/events/routes.go
package events

import (
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes wires the events feature under its mount point (e.g. "/api/events").
// Browsing is public; mutations require the HOST or ADMIN role (ownership of
// a specific event is enforced by the core API).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{eventID}", h.ServeDetail)

	r.Group(func(pr chi.Router) {
		pr.Use(authn.RequireRole(models.RoleHost, models.RoleAdmin))
		pr.Post("/", h.ServeCreate)
		pr.Patch("/{eventID}", h.ServeUpdate)
		pr.Delete("/{eventID}", h.ServeDelete)
		pr.Patch("/{eventID}/status", h.ServeStatus)
	})

	return r
}
