// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"go.uber.org/zap"
)

// Handler serves the role-dispatched dashboard.
type Handler struct {
	API    *gateway.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler creates a dashboard Handler.
func NewHandler(api *gateway.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// ServeDashboard handles GET /api/dashboard, dispatching on the caller's
// role.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	role, ok := authn.Role(r)
	if !ok {
		respond.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()
	creds := authn.CredentialsFrom(r)

	var (
		summary any
		err     error
	)
	switch role {
	case models.RoleAdmin:
		summary, err = BuildAdminSummary(ctx, h.API, creds)
	case models.RoleHost:
		summary, err = BuildHostSummary(ctx, h.API, creds, time.Now())
	default:
		summary, err = BuildUserSummary(ctx, h.API, creds, time.Now())
	}
	if h.ErrLog.Upstream(w, r, "dashboard build failed", err) {
		return
	}
	respond.OK(w, "", summary)
}
