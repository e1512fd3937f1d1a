// internal/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is the credentialed HTTP client used for every core-API call. It
// holds no per-request state: credentials arrive with each call, there is no
// retry logic, and nothing is cached between requests.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New builds a Client for the core API at baseURL. Timeout bounds every call
// at the transport level; there is no per-call cancellation beyond the
// caller's context.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// BaseURL returns the configured core-API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Request describes one core-API call. Exactly one of JSON or Form may be
// set; when both are nil the request carries no body.
type Request struct {
	Method string
	Path   string     // e.g. "/events", joined onto the base URL
	Query  url.Values // optional
	JSON   any        // body marshaled as application/json
	Form   *MultipartForm
	Header http.Header // optional extra headers; caller values win
}

// MultipartForm is a multipart/form-data body: a "data" field carrying a
// JSON-encoded payload plus an optional file part. A nil or zero-size file
// produces no file part at all.
type MultipartForm struct {
	Data     any
	FileName string
	File     io.Reader
	FileSize int64
}

// Do performs the call and decodes the response envelope. A non-2xx status
// is not an error; use Response.Err to surface upstream failures. Transport
// failures and undecodable bodies are the only returned errors.
func (c *Client) Do(ctx context.Context, creds Credentials, req Request) (*Response, error) {
	endpoint := c.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case req.Form != nil:
		buf, ct, err := encodeMultipart(req.Form)
		if err != nil {
			return nil, err
		}
		body = buf
		contentType = ct // boundary generated by the multipart writer
	case req.JSON != nil:
		raw, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if h := creds.cookieHeader(); h != "" {
		httpReq.Header.Set("Cookie", h)
	}
	for k, vs := range req.Header {
		httpReq.Header.Del(k)
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn("core API unreachable",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Error(err))
		return nil, fmt.Errorf("call core API %s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	out := &Response{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&out.Envelope); err != nil {
		return nil, fmt.Errorf("decode core API response (%s %s, status %d): %w",
			req.Method, req.Path, resp.StatusCode, err)
	}
	return out, nil
}

// Ping issues a bare GET and reports only transport failures. The body is
// discarded undecoded, so an upstream answering 404 or HTML still counts as
// reachable.
func (c *Client) Ping(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call core API GET %s: %w", path, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// encodeMultipart writes the form into a buffer and returns it with the
// writer's content type. The file part is skipped when absent or empty.
func encodeMultipart(form *MultipartForm) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	raw, err := json.Marshal(form.Data)
	if err != nil {
		return nil, "", fmt.Errorf("encode form data field: %w", err)
	}
	if err := w.WriteField("data", string(raw)); err != nil {
		return nil, "", fmt.Errorf("write form data field: %w", err)
	}

	if form.File != nil && form.FileSize > 0 {
		name := form.FileName
		if name == "" {
			name = "upload"
		}
		part, err := w.CreateFormFile("file", name)
		if err != nil {
			return nil, "", fmt.Errorf("create form file part: %w", err)
		}
		if _, err := io.Copy(part, form.File); err != nil {
			return nil, "", fmt.Errorf("copy form file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finish multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
