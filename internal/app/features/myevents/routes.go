// internal/app/features/myevents/routes.go
package myevents

import (
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/go-chi/chi/v5"
)

// Routes wires the myevents feature under its mount point
// (e.g. "/api/my-events"). Everything here is about the caller's own
// joins, so sign-in is required throughout.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Get("/activity", h.ServeActivity)

	return r
}
