// internal/app/features/userinfo/handler.go
package userinfo

import (
	"net/http"

	"github.com/gatherhub/gatherhub/internal/app/system/authn"
	"github.com/gatherhub/gatherhub/internal/app/system/navigation"
	"github.com/gatherhub/gatherhub/internal/app/system/respond"
)

// Handler serves identity and navigation for the signed-in (or anonymous)
// caller.
type Handler struct{}

// NewHandler creates a userinfo Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ServeMe handles GET /api/auth/me: the current user, or 401 when the
// cookies resolved to nobody.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	user, ok := authn.CurrentUser(r)
	if !ok {
		respond.Unauthorized(w)
		return
	}
	respond.OK(w, "", user)
}

// navPayload is what the navigation endpoint returns: where this caller
// lands after sign-in and which nav sections their role may see.
type navPayload struct {
	Landing    string               `json:"landing"`
	BecomeHost string               `json:"becomeHost"`
	Sections   []navigation.Section `json:"sections"`
}

// ServeNavigation handles GET /api/navigation. Anonymous callers get the
// login landing and no sections rather than an error.
func (h *Handler) ServeNavigation(w http.ResponseWriter, r *http.Request) {
	role, _ := authn.Role(r)
	respond.OK(w, "", navPayload{
		Landing:    navigation.LandingPath(role),
		BecomeHost: navigation.BecomeHostRedirect(role),
		Sections:   navigation.Sections(role),
	})
}
