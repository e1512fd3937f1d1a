// internal/app/system/respond/respond.go

// Package respond writes the JSON envelope this service speaks:
// {success, message, data?, meta?}. It mirrors the core API's envelope so a
// frontend sees one uniform shape regardless of which layer answered.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gatherhub/gatherhub/internal/gateway"
)

type body struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

func write(w http.ResponseWriter, status int, b body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding a fully-typed body cannot fail; ignore the writer error the
	// same way http.Error does.
	_ = json.NewEncoder(w).Encode(b)
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, message string, data any) {
	write(w, http.StatusOK, body{Success: true, Message: message, Data: data})
}

// Created writes a 201 success envelope.
func Created(w http.ResponseWriter, message string, data any) {
	write(w, http.StatusCreated, body{Success: true, Message: message, Data: data})
}

// Page writes a 200 success envelope with a pagination meta block.
func Page(w http.ResponseWriter, data any, meta any) {
	write(w, http.StatusOK, body{Success: true, Data: data, Meta: meta})
}

// Fail writes a failure envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, body{Success: false, Message: message})
}

// Unauthorized writes the standard 401 failure.
func Unauthorized(w http.ResponseWriter) {
	Fail(w, http.StatusUnauthorized, "You are not authorized")
}

// Forbidden writes the standard 403 failure.
func Forbidden(w http.ResponseWriter) {
	Fail(w, http.StatusForbidden, "You do not have permission to perform this action")
}

// UpstreamError mirrors a core-API failure to the client: the upstream
// message passes through verbatim and the HTTP status is preserved.
func UpstreamError(w http.ResponseWriter, err error) bool {
	var ue *gateway.UpstreamError
	if !errors.As(err, &ue) {
		return false
	}
	status := ue.StatusCode
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	Fail(w, status, ue.Message)
	return true
}
