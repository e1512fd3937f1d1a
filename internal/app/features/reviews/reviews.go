// internal/app/features/reviews/reviews.go
package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/features/events"
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/inputval"
	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"github.com/gatherhub/gatherhub/internal/app/system/sanitize"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves event reviews. Reviews are immutable; there is no update
// or delete path.
type Handler struct {
	API    *gateway.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler creates a reviews Handler.
func NewHandler(api *gateway.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// Payload is the typed body of a review submission.
type Payload struct {
	EventID string `json:"eventId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// Validate checks a submission before anything is forwarded upstream.
func (p *Payload) Validate() error {
	switch {
	case p.EventID == "":
		return errors.New("eventId is required")
	case !inputval.InRange(p.Rating, 1, 5):
		return errors.New("rating must be an integer between 1 and 5")
	}
	return nil
}

// ListByEvent fetches every review for one event.
func ListByEvent(ctx context.Context, api *gateway.Client, creds gateway.Credentials, eventID string) ([]models.Review, error) {
	resp, err := api.Do(ctx, creds, gateway.Request{
		Method: http.MethodGet,
		Path:   "/reviews/event/" + eventID,
	})
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	var rows []models.Review
	if err := resp.DecodeData(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// eligible reports whether user may review the event: it must be in the
// past and the user must appear in its participant list. The core API
// enforces the same rule; checking here saves a doomed write.
func eligible(event *models.Event, userID string, now time.Time) error {
	if !event.IsPast(now) {
		return errors.New("you can only review events that have ended")
	}
	for _, p := range event.Participants {
		if p.UserID == userID {
			return nil
		}
	}
	return errors.New("you can only review events you participated in")
}

// ServeCreate handles POST /api/review.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := authn.CurrentUser(r)
	if !ok {
		respond.Unauthorized(w)
		return
	}

	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if err := payload.Validate(); err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	payload.Comment = sanitize.Text(payload.Comment)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()
	creds := authn.CredentialsFrom(r)

	event, err := events.Get(ctx, h.API, creds, payload.EventID)
	if h.ErrLog.Upstream(w, r, "review eligibility fetch failed", err) {
		return
	}
	if err := eligible(event, user.ID, time.Now()); err != nil {
		respond.Fail(w, http.StatusForbidden, err.Error())
		return
	}

	resp, err := h.API.Do(ctx, creds, gateway.Request{
		Method: http.MethodPost,
		Path:   "/reviews",
		JSON:   payload,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "review forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var review models.Review
	if err := resp.DecodeData(&review); err != nil {
		h.ErrLog.ServerError(w, r, "review response decode failed", err)
		return
	}
	respond.Created(w, "Review submitted successfully", review)
}

// ServeListByEvent handles GET /api/review/event/{eventID}. Public.
func (h *Handler) ServeListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := ListByEvent(ctx, h.API, authn.CredentialsFrom(r), eventID)
	if h.ErrLog.Upstream(w, r, "review list fetch failed", err) {
		return
	}
	respond.OK(w, "", rows)
}

// Routes wires the reviews feature under its mount point (e.g. "/api/review").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/event/{eventID}", h.ServeListByEvent)

	r.Group(func(pr chi.Router) {
		pr.Use(authn.RequireSignedIn)
		pr.Post("/", h.ServeCreate)
	})

	return r
}
