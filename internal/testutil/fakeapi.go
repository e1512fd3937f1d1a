package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gatherhub/gatherhub/internal/gateway"
	"go.uber.org/zap"
)

// FakeAPI is a scripted stand-in for the core API. Tests stub responses per
// method+path and can inspect what the gateway actually sent.
type FakeAPI struct {
	srv *httptest.Server

	mu    sync.Mutex
	stubs map[string]stub
	calls []Call
}

type stub struct {
	status int
	body   string
}

// Call records one request the fake API received.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Cookie string
	Body   []byte
}

// NewFakeAPI starts a fake core API. Unstubbed routes answer 404 with a
// failure envelope so a missing stub shows up as an upstream error, not a
// decode failure.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{stubs: map[string]stub{}}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

// Client returns a gateway client pointed at the fake API.
func (f *FakeAPI) Client() *gateway.Client {
	return gateway.New(f.srv.URL, 5*time.Second, zap.NewNop())
}

// URL returns the fake API's base URL.
func (f *FakeAPI) URL() string { return f.srv.URL }

// Stub registers a response for method+path (exact match, no query).
func (f *FakeAPI) Stub(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stubs[method+" "+path] = stub{status: status, body: body}
}

// StubList registers a success list envelope with a meta block.
func (f *FakeAPI) StubList(method, path string, items any, total int64, page, limit int) {
	raw, err := json.Marshal(items)
	if err != nil {
		panic(fmt.Sprintf("testutil: marshal stub items: %v", err))
	}
	body := fmt.Sprintf(`{"success":true,"data":%s,"meta":{"page":%d,"limit":%d,"total":%d}}`,
		raw, page, limit, total)
	f.Stub(method, path, http.StatusOK, body)
}

// StubData registers a success envelope around a data payload.
func (f *FakeAPI) StubData(method, path string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(fmt.Sprintf("testutil: marshal stub data: %v", err))
	}
	f.Stub(method, path, http.StatusOK, fmt.Sprintf(`{"success":true,"data":%s}`, raw))
}

// StubFailure registers a failure envelope.
func (f *FakeAPI) StubFailure(method, path string, status int, message string) {
	f.Stub(method, path, status, fmt.Sprintf(`{"success":false,"message":%q}`, message))
}

// Calls returns every request received so far.
func (f *FakeAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// LastCall returns the most recent request, failing the test when none was
// made.
func (f *FakeAPI) LastCall(t *testing.T) Call {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("fake API received no calls")
	}
	return f.calls[len(f.calls)-1]
}

// CallCount returns how many requests matched method+path.
func (f *FakeAPI) CallCount(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, Call{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Cookie: r.Header.Get("Cookie"),
		Body:   body,
	})
	s, ok := f.stubs[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, `{"success":false,"message":"no stub for %s %s"}`, r.Method, r.URL.Path)
		return
	}
	w.WriteHeader(s.status)
	io.WriteString(w, s.body)
}
