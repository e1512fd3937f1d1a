package payments_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/features/payments"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/testutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*payments.Handler, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	logger := zap.NewNop()
	h := payments.NewHandler(api.Client(), uierrors.NewErrorLogger(logger, false), logger)
	return h, api
}

func TestServeCreateIntent(t *testing.T) {
	h, api := newHandler(t)
	api.StubData("POST", "/payments/create-intent", map[string]string{"checkoutUrl": "https://pay.example/s1"})

	req := httptest.NewRequest("POST", "/api/payment/create-intent", strings.NewReader(`{"eventId":"e1"}`))
	req = testutil.WithUser(req, testutil.RegularUser())
	rec := httptest.NewRecorder()
	h.ServeCreateIntent(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var forwarded struct {
		EventID       string `json:"eventId"`
		TransactionID string `json:"transactionId"`
	}
	if err := json.Unmarshal(api.LastCall(t).Body, &forwarded); err != nil {
		t.Fatalf("forwarded body decode: %v", err)
	}
	if forwarded.EventID != "e1" {
		t.Errorf("eventId = %q, want e1", forwarded.EventID)
	}
	if _, err := uuid.Parse(forwarded.TransactionID); err != nil {
		t.Errorf("transactionId %q is not a UUID: %v", forwarded.TransactionID, err)
	}
}

func TestServeCreateIntent_MissingEventID(t *testing.T) {
	h, api := newHandler(t)

	req := httptest.NewRequest("POST", "/api/payment/create-intent", strings.NewReader(`{}`))
	req = testutil.WithUser(req, testutil.RegularUser())
	rec := httptest.NewRecorder()
	h.ServeCreateIntent(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(api.Calls()) != 0 {
		t.Errorf("validation failure must not reach the backend")
	}
}

func TestServeSession_Repeatable(t *testing.T) {
	h, api := newHandler(t)
	api.StubData("GET", "/payments/session/cs_123", models.Payment{
		ID: "p1", Status: models.PaymentPaid,
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/api/payment/session/cs_123", nil)
		req = testutil.WithUser(req, testutil.RegularUser())
		req = testutil.WithChiURLParam(req, "sessionID", "cs_123")
		rec := httptest.NewRecorder()
		h.ServeSession(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("call %d: status = %d, body %s", i, rec.Code, rec.Body.String())
		}
	}
	if n := api.CallCount("GET", "/payments/session/cs_123"); n != 2 {
		t.Errorf("verification calls = %d, want 2", n)
	}
}

func TestServeCancel_MirrorsUpstreamRefusal(t *testing.T) {
	h, api := newHandler(t)
	api.StubFailure("DELETE", "/payments/p1", http.StatusConflict, "Only unpaid payments can be cancelled")

	req := httptest.NewRequest("DELETE", "/api/payment/p1", nil)
	req = testutil.WithUser(req, testutil.RegularUser())
	req = testutil.WithChiURLParam(req, "paymentID", "p1")
	rec := httptest.NewRecorder()
	h.ServeCancel(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unpaid") {
		t.Errorf("upstream message not passed through: %s", rec.Body.String())
	}
}

func TestServeStats(t *testing.T) {
	h, api := newHandler(t)
	paid := testutil.Date(2026, 3, 10)
	api.StubList("GET", "/payments", []models.Payment{
		{ID: "p1", Amount: 40, Status: models.PaymentPaid, PaidAt: &paid},
		{ID: "p2", Amount: 25, Status: models.PaymentUnpaid},
	}, 2, 1, 1000)

	req := httptest.NewRequest("GET", "/api/payments/stats", nil)
	req = testutil.WithUser(req, testutil.RegularUser())
	rec := httptest.NewRecorder()
	h.ServeStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data payments.Stats `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	if body.Data.TotalSpent != 40 || body.Data.UnpaidCount != 1 {
		t.Errorf("stats = %+v", body.Data)
	}
	if got := api.LastCall(t).Query.Get("limit"); got != "1000" {
		t.Errorf("aggregation fetch limit = %q, want 1000", got)
	}
}
