// internal/gateway/credentials.go
package gateway

import (
	"net/http"
	"strings"
)

// Cookie names under which the external auth service issues tokens.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Credentials carries the auth tokens forwarded to the core API. It is read
// once at the edge of a request and threaded explicitly through every call,
// so the client itself never reaches into an ambient request context.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// CredentialsFromRequest reads the token cookies off an incoming request.
// Missing cookies leave the corresponding field empty.
func CredentialsFromRequest(r *http.Request) Credentials {
	var creds Credentials
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		creds.AccessToken = c.Value
	}
	if c, err := r.Cookie(RefreshTokenCookie); err == nil {
		creds.RefreshToken = c.Value
	}
	return creds
}

// Empty reports whether no token is present at all.
func (c Credentials) Empty() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}

// cookieHeader renders the Cookie header value, omitting absent tokens.
// Returns "" when both tokens are empty.
func (c Credentials) cookieHeader() string {
	var parts []string
	if c.AccessToken != "" {
		parts = append(parts, AccessTokenCookie+"="+c.AccessToken)
	}
	if c.RefreshToken != "" {
		parts = append(parts, RefreshTokenCookie+"="+c.RefreshToken)
	}
	return strings.Join(parts, "; ")
}
