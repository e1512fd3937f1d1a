// internal/app/features/events/mutations.go
package events

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"github.com/gatherhub/gatherhub/internal/app/system/sanitize"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"github.com/go-chi/chi/v5"
)

// ServeCreate handles POST /api/events: a multipart forward. The "data"
// field carries the JSON payload; an optional image rides along as "file".
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var payload EventPayload
	file, ok := h.parseEventForm(w, r, &payload)
	if !ok {
		return
	}
	if err := payload.Validate(); err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	payload.Description = sanitize.Text(payload.Description)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodPost,
		Path:   "/events",
		Form:   h.eventForm(payload, file),
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "event create forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var event models.Event
	if err := resp.DecodeData(&event); err != nil {
		h.ErrLog.ServerError(w, r, "event create response decode failed", err)
		return
	}
	respond.Created(w, "Event created successfully", event)
}

// ServeUpdate handles PATCH /api/events/{eventID}: multipart forward of a
// partial update.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	var payload UpdatePayload
	file, ok := h.parseEventForm(w, r, &payload)
	if !ok {
		return
	}
	if err := payload.Validate(); err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Description != nil {
		clean := sanitize.Text(*payload.Description)
		payload.Description = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodPatch,
		Path:   "/events/" + eventID,
		Form:   h.eventForm(payload, file),
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "event update forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var event models.Event
	if err := resp.DecodeData(&event); err != nil {
		h.ErrLog.ServerError(w, r, "event update response decode failed", err)
		return
	}
	respond.OK(w, "Event updated successfully", event)
}

// ServeDelete handles DELETE /api/events/{eventID}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodDelete,
		Path:   "/events/" + eventID,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "event delete forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}
	respond.OK(w, "Event deleted successfully", nil)
}

// ServeStatus handles PATCH /api/events/{eventID}/status. The payload is a
// restricted enum, separate from the full update schema; the core API owns
// which transitions are legal from the event's current state.
func (h *Handler) ServeStatus(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

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
		Path:   "/events/" + eventID + "/status",
		JSON:   payload,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "event status forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var event models.Event
	if err := resp.DecodeData(&event); err != nil {
		h.ErrLog.ServerError(w, r, "event status response decode failed", err)
		return
	}
	respond.OK(w, "Event status updated", event)
}

// parseEventForm reads the incoming multipart form: the required "data"
// field is decoded into payload, and the optional file part is returned
// when present and non-empty. Writes the 400 response itself on failure.
func (h *Handler) parseEventForm(w http.ResponseWriter, r *http.Request, payload any) (*formFile, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Fail(w, http.StatusBadRequest, "request must be multipart/form-data")
		return nil, false
	}

	raw := r.FormValue("data")
	if raw == "" {
		respond.Fail(w, http.StatusBadRequest, "data field is required")
		return nil, false
	}
	if err := json.Unmarshal([]byte(raw), payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "data field is not valid JSON")
		return nil, false
	}

	f, header, err := r.FormFile("file")
	if err != nil || header.Size == 0 {
		if f != nil {
			f.Close()
		}
		return nil, true
	}
	return &formFile{file: f, header: header}, true
}

type formFile struct {
	file   multipart.File
	header *multipart.FileHeader
}

// eventForm builds the outbound multipart body. A nil file omits the file
// part entirely; an empty file part is never sent.
func (h *Handler) eventForm(payload any, file *formFile) *gateway.MultipartForm {
	form := &gateway.MultipartForm{Data: payload}
	if file != nil {
		form.File = file.file
		form.FileName = file.header.Filename
		form.FileSize = file.header.Size
	}
	return form
}
