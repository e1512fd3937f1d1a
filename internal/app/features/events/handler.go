// internal/app/features/events/handler.go
package events

import (
	"context"
	"net/http"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/listquery"
	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler owns the public event listing and the host/admin event mutations.
type Handler struct {
	API    *gateway.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler creates an events Handler.
func NewHandler(api *gateway.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// ServeList handles GET /api/events: the public paginated event listing.
// Past events are excluded unless includePast=true is explicitly set.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	params, err := listquery.Decode(r.URL.Query(), listquery.EventDefaults)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page, err := List(ctx, h.API, authn.CredentialsFrom(r), params)
	if h.ErrLog.Upstream(w, r, "event list fetch failed", err) {
		return
	}
	respond.Page(w, page.Items, gateway.Meta{Page: params.Page, Limit: params.Limit, Total: page.Total})
}

// ServeDetail handles GET /api/events/{eventID}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	event, err := Get(ctx, h.API, authn.CredentialsFrom(r), eventID)
	if h.ErrLog.Upstream(w, r, "event detail fetch failed", err) {
		return
	}
	respond.OK(w, "", event)
}
