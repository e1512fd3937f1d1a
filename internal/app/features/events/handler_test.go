package events_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/features/events"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*events.Handler, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	logger := zap.NewNop()
	h := events.NewHandler(api.Client(), uierrors.NewErrorLogger(logger, false), logger)
	return h, api
}

func TestServeList(t *testing.T) {
	h, api := newHandler(t)
	api.StubList("GET", "/events", []models.Event{
		{ID: "e1", Name: "Chess Meetup", Status: models.EventOpen},
	}, 37, 1, 9)

	req := httptest.NewRequest("GET", "/api/events?type=all&status=OPEN", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	call := api.LastCall(t)
	if call.Query.Has("type") {
		t.Errorf("the %q sentinel must not reach the backend: %v", "all", call.Query)
	}
	if call.Query.Get("status") != "OPEN" {
		t.Errorf("status filter lost: %v", call.Query)
	}
	if call.Query.Has("includePast") {
		t.Errorf("includePast must be omitted unless explicitly true: %v", call.Query)
	}
	if call.Query.Get("page") != "1" || call.Query.Get("limit") != "9" {
		t.Errorf("paging params: %v", call.Query)
	}

	var body struct {
		Success bool `json:"success"`
		Data    []models.Event
		Meta    struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	if !body.Success || body.Meta.Total != 37 {
		t.Errorf("response = %s", rec.Body.String())
	}
}

func TestServeList_IncludePastForwarded(t *testing.T) {
	h, api := newHandler(t)
	api.StubList("GET", "/events", []models.Event{}, 0, 1, 9)

	req := httptest.NewRequest("GET", "/api/events?includePast=true", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if got := api.LastCall(t).Query.Get("includePast"); got != "true" {
		t.Errorf("includePast = %q, want true", got)
	}
}

func TestServeList_BadPage(t *testing.T) {
	h, api := newHandler(t)

	req := httptest.NewRequest("GET", "/api/events?page=banana", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(api.Calls()) != 0 {
		t.Errorf("malformed input must not reach the backend")
	}
}

func TestServeList_UpstreamFailure(t *testing.T) {
	h, api := newHandler(t)
	api.StubFailure("GET", "/events", http.StatusServiceUnavailable, "events are unavailable")

	req := httptest.NewRequest("GET", "/api/events", nil)
	rec := httptest.NewRecorder()
	h.ServeList(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want mirrored 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "events are unavailable") {
		t.Errorf("upstream message not passed through: %s", rec.Body.String())
	}
}

func multipartBody(t *testing.T, data string, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if data != "" {
		if err := w.WriteField("data", data); err != nil {
			t.Fatal(err)
		}
	}
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatal(err)
		}
		part.Write([]byte(fileContent))
	}
	w.Close()
	return buf, w.FormDataContentType()
}

func TestServeCreate_MissingData(t *testing.T) {
	h, api := newHandler(t)

	body, ct := multipartBody(t, "", "", "")
	req := httptest.NewRequest("POST", "/api/events", body)
	req.Header.Set("Content-Type", ct)
	req = testutil.WithUser(req, testutil.HostUser())
	rec := httptest.NewRecorder()
	h.ServeCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(api.Calls()) != 0 {
		t.Errorf("validation failure must not reach the backend")
	}
}

func TestServeCreate_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unparseable JSON", `{"name":`},
		{"missing name", `{"type":"SPORTS","date":"2026-10-01T18:00:00Z","maxParticipants":10}`},
		{"zero capacity", `{"name":"Run","type":"SPORTS","date":"2026-10-01T18:00:00Z","maxParticipants":0}`},
		{"negative fee", `{"name":"Run","type":"SPORTS","date":"2026-10-01T18:00:00Z","maxParticipants":10,"joiningFee":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, api := newHandler(t)
			body, ct := multipartBody(t, tt.data, "", "")
			req := httptest.NewRequest("POST", "/api/events", body)
			req.Header.Set("Content-Type", ct)
			req = testutil.WithUser(req, testutil.HostUser())
			rec := httptest.NewRecorder()
			h.ServeCreate(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
			}
			if len(api.Calls()) != 0 {
				t.Errorf("invalid payload must not reach the backend")
			}
		})
	}
}

func TestServeCreate_ForwardsWithoutFilePart(t *testing.T) {
	h, api := newHandler(t)
	api.StubData("POST", "/events", models.Event{ID: "e9", Name: "Trivia Night"})

	data := `{"name":"Trivia Night","type":"SOCIAL","date":"2026-11-05T19:00:00Z","maxParticipants":40,"joiningFee":0}`
	body, ct := multipartBody(t, data, "", "")
	req := httptest.NewRequest("POST", "/api/events", body)
	req.Header.Set("Content-Type", ct)
	req = testutil.WithUser(req, testutil.HostUser())
	rec := httptest.NewRecorder()
	h.ServeCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	raw := string(api.LastCall(t).Body)
	if !strings.Contains(raw, `name="data"`) {
		t.Errorf("forwarded body missing data field")
	}
	if strings.Contains(raw, `name="file"`) {
		t.Errorf("forwarded body must not contain a file part when none was uploaded")
	}
}

func TestServeCreate_ForwardsFile(t *testing.T) {
	h, api := newHandler(t)
	api.StubData("POST", "/events", models.Event{ID: "e9"})

	data := `{"name":"Picnic","type":"OUTDOOR","date":"2026-09-12T11:00:00Z","maxParticipants":20}`
	body, ct := multipartBody(t, data, "cover.jpg", "jpeg-bytes")
	req := httptest.NewRequest("POST", "/api/events", body)
	req.Header.Set("Content-Type", ct)
	req = testutil.WithUser(req, testutil.HostUser())
	rec := httptest.NewRecorder()
	h.ServeCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	raw := string(api.LastCall(t).Body)
	if !strings.Contains(raw, `filename="cover.jpg"`) {
		t.Errorf("uploaded file not forwarded")
	}
}

func TestServeStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCall   bool
	}{
		{"reopen", `{"status":"OPEN"}`, http.StatusOK, true},
		{"cancel", `{"status":"CANCELLED"}`, http.StatusOK, true},
		{"unknown value", `{"status":"PAUSED"}`, http.StatusBadRequest, false},
		{"missing status", `{}`, http.StatusBadRequest, false},
		{"not json", `status=OPEN`, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, api := newHandler(t)
			api.StubData("PATCH", "/events/e1/status", models.Event{ID: "e1"})

			req := httptest.NewRequest("PATCH", "/api/events/e1/status", strings.NewReader(tt.body))
			req = testutil.WithUser(req, testutil.HostUser())
			req = testutil.WithChiURLParam(req, "eventID", "e1")
			rec := httptest.NewRecorder()
			h.ServeStatus(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if got := len(api.Calls()) > 0; got != tt.wantCall {
				t.Errorf("backend called = %v, want %v", got, tt.wantCall)
			}
		})
	}
}

func TestServeDelete(t *testing.T) {
	h, api := newHandler(t)
	api.Stub("DELETE", "/events/e7", http.StatusOK, `{"success":true}`)

	req := httptest.NewRequest("DELETE", "/api/events/e7", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "eventID", "e7")
	rec := httptest.NewRecorder()
	h.ServeDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}
