// internal/app/features/hostrequests/handler.go
package hostrequests

import (
	"context"
	"encoding/json"
	"net/http"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/listquery"
	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"github.com/gatherhub/gatherhub/internal/app/system/sanitize"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves host applications: submission by users, moderation by
// admins.
type Handler struct {
	API    *gateway.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler creates a hostrequests Handler.
func NewHandler(api *gateway.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// List fetches one page of host applications for admin review.
func List(ctx context.Context, api *gateway.Client, creds gateway.Credentials, p listquery.Params) (gateway.Page[models.HostRequest], error) {
	return gateway.FetchPage[models.HostRequest](ctx, api, creds, "/host-requests", p.UpstreamQuery())
}

// ServeSubmit handles POST /api/host/request: a multipart forward of the
// caller's application, with an optional supporting document.
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Fail(w, http.StatusBadRequest, "request must be multipart/form-data")
		return
	}

	raw := r.FormValue("data")
	if raw == "" {
		respond.Fail(w, http.StatusBadRequest, "data field is required")
		return
	}
	var payload RequestPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "data field is not valid JSON")
		return
	}
	if err := payload.Validate(); err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	payload.Bio = sanitize.Text(payload.Bio)

	form := &gateway.MultipartForm{Data: payload}
	if f, header, err := r.FormFile("file"); err == nil && header.Size > 0 {
		form.File = f
		form.FileName = header.Filename
		form.FileSize = header.Size
	} else if f != nil {
		f.Close()
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodPost,
		Path:   "/host-requests",
		Form:   form,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "host request forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var request models.HostRequest
	if err := resp.DecodeData(&request); err != nil {
		h.ErrLog.ServerError(w, r, "host request response decode failed", err)
		return
	}
	respond.Created(w, "Host request submitted successfully", request)
}

// ServeList handles GET /api/host/requests for admins.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	params, err := listquery.Decode(r.URL.Query(), listquery.HostRequestDefaults)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page, err := List(ctx, h.API, authn.CredentialsFrom(r), params)
	if h.ErrLog.Upstream(w, r, "host request list fetch failed", err) {
		return
	}
	respond.Page(w, page.Items, gateway.Meta{Page: params.Page, Limit: params.Limit, Total: page.Total})
}

// ServeApprove handles PATCH /api/host/requests/{requestID}/approve. The
// core API promotes the applicant to HOST in the same operation.
func (h *Handler) ServeApprove(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodPatch,
		Path:   "/host-requests/" + requestID + "/approve",
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "host request approve forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var request models.HostRequest
	if err := resp.DecodeData(&request); err != nil {
		h.ErrLog.ServerError(w, r, "host request approve response decode failed", err)
		return
	}
	respond.OK(w, "Host request approved", request)
}

// ServeReject handles PATCH /api/host/requests/{requestID}/reject. The
// reason is validated here; an empty one never reaches the backend.
func (h *Handler) ServeReject(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	var payload RejectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if err := payload.Validate(); err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	payload.Reason = sanitize.Text(payload.Reason)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodPatch,
		Path:   "/host-requests/" + requestID + "/reject",
		JSON:   payload,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "host request reject forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var request models.HostRequest
	if err := resp.DecodeData(&request); err != nil {
		h.ErrLog.ServerError(w, r, "host request reject response decode failed", err)
		return
	}
	respond.OK(w, "Host request rejected", request)
}
