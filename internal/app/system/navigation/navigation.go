// internal/app/system/navigation/navigation.go

// Package navigation maps a role to its default landing route and visible
// navigation sections. It is pure and total over the three defined roles,
// failing closed to the login route for anything unrecognized.
package navigation

import "github.com/gatherhub/gatherhub/internal/domain/models"

// Well-known routes.
const (
	LoginPath          = "/login"
	UserDashboardPath  = "/dashboard"
	HostDashboardPath  = "/host/dashboard"
	AdminDashboardPath = "/admin/dashboard"
	BecomeHostFormPath = "/become-a-host"
)

// Entry is one navigation link.
type Entry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Section is an ordered group of navigation entries.
type Section struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// LandingPath returns the default post-login route for a role. Unknown or
// missing roles land on login.
func LandingPath(role string) string {
	switch models.NormalizeRole(role) {
	case models.RoleUser:
		return UserDashboardPath
	case models.RoleHost:
		return HostDashboardPath
	case models.RoleAdmin:
		return AdminDashboardPath
	}
	return LoginPath
}

// BecomeHostRedirect resolves where the become-a-host flow sends the caller:
// hosts and admins already have a dashboard, users get the application form,
// anyone else signs in first.
func BecomeHostRedirect(role string) string {
	switch models.NormalizeRole(role) {
	case models.RoleHost:
		return HostDashboardPath
	case models.RoleAdmin:
		return AdminDashboardPath
	case models.RoleUser:
		return BecomeHostFormPath
	}
	return LoginPath
}

// Sections returns the ordered navigation sections visible to a role.
func Sections(role string) []Section {
	switch models.NormalizeRole(role) {
	case models.RoleUser:
		return []Section{
			{Title: "Events", Entries: []Entry{
				{Label: "Browse Events", Path: "/events"},
				{Label: "My Events", Path: "/my-events"},
			}},
			{Title: "Account", Entries: []Entry{
				{Label: "Dashboard", Path: UserDashboardPath},
				{Label: "Payments", Path: "/payments"},
				{Label: "Become a Host", Path: BecomeHostFormPath},
				{Label: "Profile", Path: "/profile"},
			}},
		}
	case models.RoleHost:
		return []Section{
			{Title: "Hosting", Entries: []Entry{
				{Label: "Dashboard", Path: HostDashboardPath},
				{Label: "My Events", Path: "/host/events"},
				{Label: "Create Event", Path: "/host/events/new"},
			}},
			{Title: "Account", Entries: []Entry{
				{Label: "Browse Events", Path: "/events"},
				{Label: "Profile", Path: "/profile"},
			}},
		}
	case models.RoleAdmin:
		return []Section{
			{Title: "Moderation", Entries: []Entry{
				{Label: "Dashboard", Path: AdminDashboardPath},
				{Label: "Users", Path: "/admin/users"},
				{Label: "Hosts", Path: "/admin/hosts"},
				{Label: "Host Applications", Path: "/admin/host-requests"},
			}},
			{Title: "Platform", Entries: []Entry{
				{Label: "All Events", Path: "/admin/events"},
				{Label: "Payments", Path: "/admin/payments"},
			}},
		}
	}
	return nil
}
