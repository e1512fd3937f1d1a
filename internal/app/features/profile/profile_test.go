package profile_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/gatherhub/gatherhub/internal/app/features/errors"
	"github.com/gatherhub/gatherhub/internal/app/features/profile"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*profile.Handler, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	logger := zap.NewNop()
	h := profile.NewHandler(api.Client(), uierrors.NewErrorLogger(logger, false), logger)
	return h, api
}

func updateRequest(t *testing.T, data, fileName string) *http.Request {
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
		part.Write([]byte("png-bytes"))
	}
	w.Close()
	req := httptest.NewRequest("PATCH", "/api/profile", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return testutil.WithUser(req, testutil.RegularUser())
}

func TestServeUpdate(t *testing.T) {
	h, api := newHandler(t)
	api.StubData("PATCH", "/users/me", models.User{ID: "u1", Name: "New Name"})

	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, updateRequest(t, `{"name":"New Name","bio":"<i>hello</i>"}`, "avatar.png"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	raw := string(api.LastCall(t).Body)
	if !strings.Contains(raw, `filename="avatar.png"`) {
		t.Errorf("photo not forwarded: %s", raw)
	}
	if strings.Contains(raw, "<i>") {
		t.Errorf("bio not sanitized: %s", raw)
	}
}

func TestServeUpdate_MissingData(t *testing.T) {
	h, api := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, updateRequest(t, "", ""))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(api.Calls()) != 0 {
		t.Errorf("validation failure must not reach the backend")
	}
}

func TestServeUpdate_NoFilePartWhenAbsent(t *testing.T) {
	h, api := newHandler(t)
	api.StubData("PATCH", "/users/me", models.User{ID: "u1"})

	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, updateRequest(t, `{"location":"Austin"}`, ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if raw := string(api.LastCall(t).Body); strings.Contains(raw, `name="file"`) {
		t.Errorf("forwarded body must not contain a file part when none was uploaded")
	}
}
