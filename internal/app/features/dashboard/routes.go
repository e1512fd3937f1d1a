// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard under its mount point (e.g. "/api/dashboard").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireSignedIn)

	r.Get("/", h.ServeDashboard)

	return r
}
