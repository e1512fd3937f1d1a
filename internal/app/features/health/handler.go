// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	API *gateway.Client
	Log *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(api *gateway.Client, logger *zap.Logger) *Handler {
	return &Handler{API: api, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "upstream":"reachable" }
//
// On upstream failure: 503 and
//
//	{ "status":"error", "upstream":"unreachable", "message":"Core API unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Upstream: "reachable",
	}

	// Any HTTP answer counts as reachable; only a transport error does not.
	if err := h.API.Ping(ctx, "/health"); err != nil {
		h.Log.Error("health-check: core API ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Upstream = "unreachable"
		resp.Message = "Core API unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
