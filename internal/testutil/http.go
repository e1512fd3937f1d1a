package testutil

import (
	"context"
	"net/http"
	"time"

	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminUser returns a test user with the ADMIN role.
func AdminUser() *models.User {
	return &models.User{
		ID:     uuid.NewString(),
		Name:   "Test Admin",
		Email:  "admin@test.com",
		Role:   models.RoleAdmin,
		Status: models.StatusActive,
	}
}

// HostUser returns a test user with the HOST role.
func HostUser() *models.User {
	return &models.User{
		ID:     uuid.NewString(),
		Name:   "Test Host",
		Email:  "host@test.com",
		Role:   models.RoleHost,
		Status: models.StatusActive,
	}
}

// RegularUser returns a test user with the USER role.
func RegularUser() *models.User {
	return &models.User{
		ID:     uuid.NewString(),
		Name:   "Test User",
		Email:  "user@test.com",
		Role:   models.RoleUser,
		Status: models.StatusActive,
	}
}

// WithUser injects a user into the request context, the way authn.LoadUser
// would after a successful lookup.
func WithUser(r *http.Request, u *models.User) *http.Request {
	return authn.WithTestUser(r, u)
}

// WithChiURLParam adds a chi URL parameter to the request context. Use this
// in handler tests that need chi.URLParam values without a full router.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Date builds a UTC timestamp for fixtures.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
