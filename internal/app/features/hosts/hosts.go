// internal/app/features/hosts/hosts.go
package hosts

import (
	"context"
	"net/http"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/listquery"
	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the admin host directory. Host removal is soft: the core
// API deactivates the account and keeps its events, and restore undoes it.
type Handler struct {
	API    *gateway.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler creates a hosts Handler.
func NewHandler(api *gateway.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// List fetches one page of the host directory.
func List(ctx context.Context, api *gateway.Client, creds gateway.Credentials, p listquery.Params) (gateway.Page[models.User], error) {
	return gateway.FetchPage[models.User](ctx, api, creds, "/hosts", p.UpstreamQuery())
}

// ServeList handles GET /api/hosts.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	params, err := listquery.Decode(r.URL.Query(), listquery.HostDefaults)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page, err := List(ctx, h.API, authn.CredentialsFrom(r), params)
	if h.ErrLog.Upstream(w, r, "host list fetch failed", err) {
		return
	}
	respond.Page(w, page.Items, gateway.Meta{Page: params.Page, Limit: params.Limit, Total: page.Total})
}

// ServeDelete handles DELETE /api/hosts/{hostID}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	hostID := chi.URLParam(r, "hostID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodDelete,
		Path:   "/hosts/" + hostID,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "host delete forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}
	respond.OK(w, "Host removed successfully", nil)
}

// ServeRestore handles PATCH /api/hosts/{hostID}/restore.
func (h *Handler) ServeRestore(w http.ResponseWriter, r *http.Request) {
	hostID := chi.URLParam(r, "hostID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodPatch,
		Path:   "/hosts/" + hostID + "/restore",
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "host restore forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var host models.User
	if err := resp.DecodeData(&host); err != nil {
		h.ErrLog.ServerError(w, r, "host restore response decode failed", err)
		return
	}
	respond.OK(w, "Host restored successfully", host)
}

// Routes wires the hosts feature under its mount point (e.g. "/api/hosts").
// Admin only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireRole(models.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Delete("/{hostID}", h.ServeDelete)
	r.Patch("/{hostID}/restore", h.ServeRestore)

	return r
}
