// internal/app/features/hostevents/hostevents.go
package hostevents

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

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

// statsFetchLimit caps the single full fetch the host dashboard reduces
// over.
const statsFetchLimit = 1000

// Handler serves a host's own event listing.
type Handler struct {
	API    *gateway.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler creates a hostevents Handler.
func NewHandler(api *gateway.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// List fetches one page of the caller's own events, past ones included.
func List(ctx context.Context, api *gateway.Client, creds gateway.Credentials, p listquery.Params) (gateway.Page[models.Event], error) {
	return gateway.FetchPage[models.Event](ctx, api, creds, "/events/host", p.UpstreamQuery())
}

// ListAll fetches the caller's events in one capped page for client-side
// aggregation.
func ListAll(ctx context.Context, api *gateway.Client, creds gateway.Credentials) ([]models.Event, error) {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("limit", strconv.Itoa(statsFetchLimit))
	page, err := gateway.FetchPage[models.Event](ctx, api, creds, "/events/host", q)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ServeList handles GET /api/host/events.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	params, err := listquery.Decode(r.URL.Query(), listquery.EventDefaults)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page, err := List(ctx, h.API, authn.CredentialsFrom(r), params)
	if h.ErrLog.Upstream(w, r, "host events fetch failed", err) {
		return
	}
	respond.Page(w, page.Items, gateway.Meta{Page: params.Page, Limit: params.Limit, Total: page.Total})
}

// Routes wires the hostevents feature under its mount point
// (e.g. "/api/host/events").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireRole(models.RoleHost, models.RoleAdmin))

	r.Get("/", h.ServeList)

	return r
}
