// internal/app/features/hostrequests/routes.go
package hostrequests

import (
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// SubmitRoutes wires the application form (e.g. "/api/host/request").
// Any signed-in user may apply; the core API rejects duplicates and
// existing hosts.
func SubmitRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireSignedIn)

	r.Post("/", h.ServeSubmit)

	return r
}

// AdminRoutes wires moderation (e.g. "/api/host/requests").
func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireRole(models.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Patch("/{requestID}/approve", h.ServeApprove)
	r.Patch("/{requestID}/reject", h.ServeReject)

	return r
}
