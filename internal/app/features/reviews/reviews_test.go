package reviews_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/features/reviews"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*reviews.Handler, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	logger := zap.NewNop()
	h := reviews.NewHandler(api.Client(), uierrors.NewErrorLogger(logger, false), logger)
	return h, api
}

func stubEvent(api *testutil.FakeAPI, eventDate time.Time, participantIDs ...string) {
	participants := make([]models.Participant, len(participantIDs))
	for i, id := range participantIDs {
		participants[i] = models.Participant{UserID: id, EventID: "e1"}
	}
	api.StubData("GET", "/events/e1", models.Event{
		ID: "e1", Name: "Closed Beta Meetup", Date: eventDate,
		Status: models.EventCompleted, Participants: participants,
	})
}

func TestServeCreate(t *testing.T) {
	h, api := newHandler(t)
	user := testutil.RegularUser()
	stubEvent(api, time.Now().Add(-48*time.Hour), "someone-else", user.ID)
	api.StubData("POST", "/reviews", models.Review{ID: "r1", Rating: 4})

	body := `{"eventId":"e1","rating":4,"comment":"<b>great</b> night"}`
	req := httptest.NewRequest("POST", "/api/review", strings.NewReader(body))
	req = testutil.WithUser(req, user)
	rec := httptest.NewRecorder()
	h.ServeCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	raw := string(api.LastCall(t).Body)
	if strings.Contains(raw, "<b>") {
		t.Errorf("comment not sanitized: %s", raw)
	}
	if !strings.Contains(raw, "great night") {
		t.Errorf("comment text lost: %s", raw)
	}
}

func TestServeCreate_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing eventId", `{"rating":4}`},
		{"missing rating", `{"eventId":"e1"}`},
		{"rating too low", `{"eventId":"e1","rating":0}`},
		{"rating too high", `{"eventId":"e1","rating":6}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, api := newHandler(t)

			req := httptest.NewRequest("POST", "/api/review", strings.NewReader(tt.body))
			req = testutil.WithUser(req, testutil.RegularUser())
			rec := httptest.NewRecorder()
			h.ServeCreate(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
			}
			if len(api.Calls()) != 0 {
				t.Errorf("validation failure must not reach the backend")
			}
		})
	}
}

func TestServeCreate_Eligibility(t *testing.T) {
	user := testutil.RegularUser()

	tests := []struct {
		name         string
		eventDate    time.Time
		participants []string
	}{
		{"event still upcoming", time.Now().Add(72 * time.Hour), []string{user.ID}},
		{"caller never joined", time.Now().Add(-72 * time.Hour), []string{"someone-else"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, api := newHandler(t)
			stubEvent(api, tt.eventDate, tt.participants...)

			body := `{"eventId":"e1","rating":5}`
			req := httptest.NewRequest("POST", "/api/review", strings.NewReader(body))
			req = testutil.WithUser(req, user)
			rec := httptest.NewRecorder()
			h.ServeCreate(rec, req)

			if rec.Code != http.StatusForbidden {
				t.Errorf("status = %d, want 403 (%s)", rec.Code, rec.Body.String())
			}
			if n := api.CallCount("POST", "/reviews"); n != 0 {
				t.Errorf("ineligible review reached the backend %d times", n)
			}
		})
	}
}

func TestServeCreate_Anonymous(t *testing.T) {
	h, _ := newHandler(t)

	req := httptest.NewRequest("POST", "/api/review", strings.NewReader(`{"eventId":"e1","rating":3}`))
	rec := httptest.NewRecorder()
	h.ServeCreate(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestServeListByEvent(t *testing.T) {
	h, api := newHandler(t)
	api.StubData("GET", "/reviews/event/e1", []models.Review{
		{ID: "r1", Rating: 5}, {ID: "r2", Rating: 3},
	})

	req := httptest.NewRequest("GET", "/api/review/event/e1", nil)
	req = testutil.WithChiURLParam(req, "eventID", "e1")
	rec := httptest.NewRecorder()
	h.ServeListByEvent(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	for _, id := range []string{"r1", "r2"} {
		if !strings.Contains(rec.Body.String(), fmt.Sprintf("%q", id)) {
			t.Errorf("review %s missing from response: %s", id, rec.Body.String())
		}
	}
}
