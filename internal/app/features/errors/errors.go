// internal/app/features/errors/errors.go

// Package errors centralizes how handlers surface failures: upstream
// failures mirror the core API's message and status, validation failures
// short-circuit with a field message, and anything unexpected is logged in
// full while the client sees a sanitized 500.
package errors

import (
	"net/http"

	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// ErrorLogger logs server-side errors and writes client-safe responses.
type ErrorLogger struct {
	log *zap.Logger
	dev bool
}

// NewErrorLogger builds an ErrorLogger. In dev mode the real error message
// is included in 500 responses; in production the client sees only a
// generic message.
func NewErrorLogger(logger *zap.Logger, dev bool) *ErrorLogger {
	return &ErrorLogger{log: logger, dev: dev}
}

// ServerError handles an unexpected failure: logs the real error with
// request context, then writes a 500 envelope.
func (el *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	el.log.Error(logMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))

	msg := "Something went wrong"
	if el.dev && err != nil {
		msg = err.Error()
	}
	respond.Fail(w, http.StatusInternalServerError, msg)
}

// Upstream handles a gateway call result: upstream failures are mirrored to
// the client verbatim, anything else is treated as a server error. Returns
// true when a response was written.
func (el *ErrorLogger) Upstream(w http.ResponseWriter, r *http.Request, logMsg string, err error) bool {
	if err == nil {
		return false
	}
	if respond.UpstreamError(w, err) {
		el.log.Debug(logMsg,
			zap.String("path", r.URL.Path),
			zap.Error(err))
		return true
	}
	el.ServerError(w, r, logMsg, err)
	return true
}
