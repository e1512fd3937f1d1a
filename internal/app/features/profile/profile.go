// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"github.com/gatherhub/gatherhub/internal/app/system/sanitize"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxUploadSize bounds in-memory parsing of the profile form.
const maxUploadSize = 10 << 20

// Handler serves the caller's own profile update.
type Handler struct {
	API    *gateway.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler creates a profile Handler.
func NewHandler(api *gateway.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// Payload is the typed body of a profile update; only non-nil fields are
// sent.
type Payload struct {
	Name      *string   `json:"name,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Location  *string   `json:"location,omitempty"`
	ContactNo *string   `json:"contactNo,omitempty"`
	Interests *[]string `json:"interests,omitempty"`
}

// Validate checks whichever fields the update carries.
func (p *Payload) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

// ServeUpdate handles PATCH /api/profile: a multipart forward of the
// caller's profile changes, with an optional photo.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Fail(w, http.StatusBadRequest, "request must be multipart/form-data")
		return
	}

	raw := r.FormValue("data")
	if raw == "" {
		respond.Fail(w, http.StatusBadRequest, "data field is required")
		return
	}
	var payload Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "data field is not valid JSON")
		return
	}
	if err := payload.Validate(); err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Bio != nil {
		clean := sanitize.Text(*payload.Bio)
		payload.Bio = &clean
	}

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
		Method: http.MethodPatch,
		Path:   "/users/me",
		Form:   form,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "profile update forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var user models.User
	if err := resp.DecodeData(&user); err != nil {
		h.ErrLog.ServerError(w, r, "profile update response decode failed", err)
		return
	}
	respond.OK(w, "Profile updated successfully", user)
}

// Routes wires the profile feature under its mount point (e.g. "/api/profile").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authn.RequireSignedIn)

	r.Patch("/", h.ServeUpdate)

	return r
}
