// internal/app/features/payments/handler.go
package payments

import (
	"context"
	"encoding/json"
	"net/http"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/listquery"
	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves payment history, intent creation, and session
// verification.
type Handler struct {
	API    *gateway.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler creates a payments Handler.
func NewHandler(api *gateway.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: api, ErrLog: errLog, Log: logger}
}

// IntentPayload is the body of a payment intent creation.
type IntentPayload struct {
	EventID string `json:"eventId"`
}

// intentRequest is what travels upstream: the event plus a client-generated
// transaction reference the provider callback can be matched against.
type intentRequest struct {
	EventID       string `json:"eventId"`
	TransactionID string `json:"transactionId"`
}

// ServeList handles GET /api/payments.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	params, err := listquery.Decode(r.URL.Query(), listquery.PaymentDefaults)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page, err := List(ctx, h.API, authn.CredentialsFrom(r), params)
	if h.ErrLog.Upstream(w, r, "payment list fetch failed", err) {
		return
	}
	respond.Page(w, page.Items, gateway.Meta{Page: params.Page, Limit: params.Limit, Total: page.Total})
}

// ServeStats handles GET /api/payments/stats: the caller's spending
// summary, reduced here from a capped full fetch.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	rows, err := listAll(ctx, h.API, authn.CredentialsFrom(r))
	if h.ErrLog.Upstream(w, r, "payment stats fetch failed", err) {
		return
	}
	respond.OK(w, "", ComputeStats(rows))
}

// ServeCreateIntent handles POST /api/payment/create-intent. A missing
// eventId fails before any network call; the transaction reference is
// generated here so a retried submit gets a fresh one.
func (h *Handler) ServeCreateIntent(w http.ResponseWriter, r *http.Request) {
	var payload IntentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Fail(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if payload.EventID == "" {
		respond.Fail(w, http.StatusBadRequest, "eventId is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodPost,
		Path:   "/payments/create-intent",
		JSON: intentRequest{
			EventID:       payload.EventID,
			TransactionID: uuid.NewString(),
		},
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "payment intent forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}
	respond.OK(w, "Payment intent created", resp.Envelope.Data)
}

// ServeSession handles GET /api/payment/session/{sessionID}: verification
// of a provider checkout session. Safe to re-call; the core API will not
// double-insert the participant.
func (h *Handler) ServeSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodGet,
		Path:   "/payments/session/" + sessionID,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "payment session forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}

	var payment models.Payment
	if err := resp.DecodeData(&payment); err != nil {
		h.ErrLog.ServerError(w, r, "payment session response decode failed", err)
		return
	}
	respond.OK(w, "Payment verified", payment)
}

// ServeCancel handles DELETE /api/payment/{paymentID}. Only UNPAID rows can
// be cancelled; the core API owns that check.
func (h *Handler) ServeCancel(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resp, err := h.API.Do(ctx, authn.CredentialsFrom(r), gateway.Request{
		Method: http.MethodDelete,
		Path:   "/payments/" + paymentID,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "payment cancel forward failed", err)
		return
	}
	if err := resp.Err(); err != nil {
		respond.UpstreamError(w, err)
		return
	}
	respond.OK(w, "Payment cancelled", nil)
}
