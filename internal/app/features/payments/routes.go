// internal/app/features/payments/routes.go
package payments

import (
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/go-chi/chi/v5"
)

// ListRoutes wires the history side (e.g. "/api/payments").
func ListRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Get("/stats", h.ServeStats)

	return r
}

// ActionRoutes wires the checkout side (e.g. "/api/payment").
func ActionRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireSignedIn)

	r.Post("/create-intent", h.ServeCreateIntent)
	r.Get("/session/{sessionID}", h.ServeSession)
	r.Delete("/{paymentID}", h.ServeCancel)

	return r
}
