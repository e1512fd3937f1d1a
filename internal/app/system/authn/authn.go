// internal/app/system/authn/authn.go

// Package authn resolves the current user for a request. Sessions are owned
// by the external auth service: it issues accessToken/refreshToken cookies
// that this layer forwards opaquely. LoadUser asks the core API who the
// caller is; downstream handlers read the answer from the request context.
package authn

import (
	"context"
	"net/http"

	"github.com/gatherhub/gatherhub/internal/app/system/respond"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"go.uber.org/zap"
)

type ctxKey int

const (
	userKey ctxKey = iota
	credsKey
)

// CurrentUser returns the authenticated user and a found flag.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(userKey).(*models.User)
	return u, ok
}

// CredentialsFrom returns the request's forwarded credentials. Always
// present once LoadUser has run; zero-valued otherwise.
func CredentialsFrom(r *http.Request) gateway.Credentials {
	creds, _ := r.Context().Value(credsKey).(gateway.Credentials)
	return creds
}

// Role returns the current user's normalized role and a found flag.
func Role(r *http.Request) (string, bool) {
	u, ok := CurrentUser(r)
	if !ok {
		return "", false
	}
	return models.NormalizeRole(u.Role), true
}

// LoadUser reads the token cookies, stores them in the request context, and
// resolves the current user via the core API when tokens are present. A
// failed or anonymous lookup is not an error; the request continues without
// a user and RequireSignedIn decides what that means per route.
func LoadUser(api *gateway.Client, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds := gateway.CredentialsFromRequest(r)
			ctx := context.WithValue(r.Context(), credsKey, creds)

			if !creds.Empty() {
				if u, err := FetchMe(ctx, api, creds); err == nil {
					ctx = context.WithValue(ctx, userKey, u)
				} else {
					logger.Debug("current-user lookup failed", zap.Error(err))
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FetchMe resolves the current user from the core API.
func FetchMe(ctx context.Context, api *gateway.Client, creds gateway.Credentials) (*models.User, error) {
	resp, err := api.Do(ctx, creds, gateway.Request{
		Method: http.MethodGet,
		Path:   "/auth/me",
	})
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	var u models.User
	if err := resp.DecodeData(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// RequireSignedIn rejects anonymous requests with a 401 envelope.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			respond.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests whose user lacks one of the allowed roles:
// 401 when anonymous, 403 when signed in with the wrong role.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[models.NormalizeRole(role)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := Role(r)
			if !ok {
				respond.Unauthorized(w)
				return
			}
			if _, allowed := set[role]; !allowed {
				respond.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithTestUser injects a user into the request context for handler tests.
func WithTestUser(r *http.Request, u *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, u))
}

// WithTestCredentials injects credentials into the request context for tests.
func WithTestCredentials(r *http.Request, creds gateway.Credentials) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), credsKey, creds))
}
