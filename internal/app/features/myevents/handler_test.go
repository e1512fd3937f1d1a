package myevents_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/features/myevents"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*myevents.Handler, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	logger := zap.NewNop()
	h := myevents.NewHandler(api.Client(), uierrors.NewErrorLogger(logger, false), logger)
	return h, api
}

func join(t *testing.T, y int, m time.Month, d int) models.Participant {
	t.Helper()
	return models.Participant{
		ID:       "p-" + m.String(),
		UserID:   "u1",
		JoinedAt: time.Date(y, m, d, 10, 0, 0, 0, time.UTC),
	}
}

func TestServeList(t *testing.T) {
	h, api := newHandler(t)
	api.StubList("GET", "/events/my", []models.Participant{
		{ID: "p1", EventID: "e1", JoinedAt: testutil.Date(2026, time.May, 2)},
	}, 14, 2, 9)

	req := httptest.NewRequest("GET", "/api/my-events?page=2", nil)
	req = testutil.WithUser(req, testutil.RegularUser())
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := api.LastCall(t).Query.Get("page"); got != "2" {
		t.Errorf("page = %q, want 2", got)
	}
}

func TestServeActivity_ChronologicalBuckets(t *testing.T) {
	h, api := newHandler(t)
	// Out of insertion order, and label order would put Apr before Jan.
	api.StubList("GET", "/events/my", []models.Participant{
		join(t, 2026, time.April, 3),
		join(t, 2026, time.January, 10),
		join(t, 2026, time.January, 20),
		join(t, 2025, time.December, 5),
	}, 4, 1, 1000)

	req := httptest.NewRequest("GET", "/api/my-events/activity", nil)
	req = testutil.WithUser(req, testutil.RegularUser())
	rec := httptest.NewRecorder()
	h.ServeActivity(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data []struct {
			Label string `json:"label"`
			Count int    `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response decode: %v", err)
	}

	wantLabels := []string{"Dec 2025", "Jan 2026", "Apr 2026"}
	wantCounts := []int{1, 2, 1}
	if len(body.Data) != len(wantLabels) {
		t.Fatalf("got %d buckets, want %d: %s", len(body.Data), len(wantLabels), rec.Body.String())
	}
	for i := range wantLabels {
		if body.Data[i].Label != wantLabels[i] || body.Data[i].Count != wantCounts[i] {
			t.Errorf("bucket[%d] = %+v, want %s/%d", i, body.Data[i], wantLabels[i], wantCounts[i])
		}
	}

	if got := api.LastCall(t).Query.Get("limit"); got != "1000" {
		t.Errorf("aggregation fetch limit = %q, want 1000", got)
	}
}

func TestServeActivity_Empty(t *testing.T) {
	h, api := newHandler(t)
	api.StubList("GET", "/events/my", []models.Participant{}, 0, 1, 1000)

	req := httptest.NewRequest("GET", "/api/my-events/activity", nil)
	req = testutil.WithUser(req, testutil.RegularUser())
	rec := httptest.NewRecorder()
	h.ServeActivity(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	if len(body.Data) != 0 {
		t.Errorf("empty history produced %d buckets", len(body.Data))
	}
}
