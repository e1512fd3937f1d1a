// internal/app/features/users/users.go
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

// Handler serves the admin user directory.
type Handler struct {
	API    *gateway.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler creates a users Handler.
func NewHandler(api *gateway.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// List fetches one page of the user directory. Role and status filters and
// free-text search travel upstream as-is.
func List(ctx context.Context, api *gateway.Client, creds gateway.Credentials, p listquery.Params) (gateway.Page[models.User], error) {
	return gateway.FetchPage[models.User](ctx, api, creds, "/users", p.UpstreamQuery())
}

// StatusPayload is the body of an account status change.
type StatusPayload struct {
	Status string `json:"status"`
}

// Validate rejects anything but the two defined account states.
func (p *StatusPayload) Validate() error {
	switch p.Status {
	case models.StatusActive, models.StatusInactive:
		return nil
	case "":
		return errors.New("status is required")
	}
	return fmt.Errorf("status must be %s or %s", models.StatusActive, models.StatusInactive)
}

// ServeList handles GET /api/users.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	params, err := listquery.Decode(r.URL.Query(), listquery.UserDefaults)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page, err := List(ctx, h.API, authn.CredentialsFrom(r), params)
	if h.ErrLog.Upstream(w, r, "user list fetch failed", err) {
		return
	}
	respond.Page(w, page.Items, gateway.Meta{Page: params.Page, Limit: params.Limit, Total: page.Total})
}

// ServeDelete handles DELETE /api/users/{userID}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodDelete,
		Path:   "/users/" + userID,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "user delete forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}
	respond.OK(w, "User deleted successfully", nil)
}

// ServeStatus handles PATCH /api/users/{userID}/status.
func (h *Handler) ServeStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var payload StatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if err := payload.Validate(); err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodPatch,
		Path:   "/users/" + userID + "/status",
		JSON:   payload,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "user status forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var user models.User
	if err := resp.DecodeData(&user); err != nil {
		h.ErrLog.ServerError(w, r, "user status response decode failed", err)
		return
	}
	respond.OK(w, "User status updated", user)
}

// Routes wires the users feature under its mount point (e.g. "/api/users").
// Admin only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireRole(models.RoleAdmin))

	r.Get("/", h.ServeList)
	r.Delete("/{userID}", h.ServeDelete)
	r.Patch("/{userID}/status", h.ServeStatus)

	return r
}
