// internal/app/features/myevents/handler.go
package myevents

import (
	"context"
	"net/http"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/listquery"
	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"go.uber.org/zap"
)

// Handler serves the signed-in user's joined events and activity feed.
type Handler struct {
	API    *gateway.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler creates a myevents Handler.
func NewHandler(api *gateway.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// ServeList handles GET /api/my-events.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	params, err := listquery.Decode(r.URL.Query(), listquery.EventDefaults)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page, err := List(ctx, h.API, authn.CredentialsFrom(r), params)
	if h.ErrLog.Upstream(w, r, "joined events fetch failed", err) {
		return
	}
	respond.Page(w, page.Items, gateway.Meta{Page: params.Page, Limit: params.Limit, Total: page.Total})
}

// ServeActivity handles GET /api/my-events/activity: joins per month over
// the last six months.
func (h *Handler) ServeActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	points, err := Activity(ctx, h.API, authn.CredentialsFrom(r))
	if h.ErrLog.Upstream(w, r, "activity fetch failed", err) {
		return
	}
	respond.OK(w, "", points)
}
