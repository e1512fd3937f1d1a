// internal/domain/models/roles.go
package models

import "strings"

// Role values as reported by the core API.
const (
	RoleUser  = "USER"
	RoleHost  = "HOST"
	RoleAdmin = "ADMIN"
)

// User status values.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// NormalizeRole upper-cases and trims a role string so comparisons are
// consistent regardless of how the upstream serialized it.
func NormalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

// ValidRole reports whether role is one of the three defined roles.
func ValidRole(role string) bool {
	switch NormalizeRole(role) {
	case RoleUser, RoleHost, RoleAdmin:
		return true
	}
	return false
}
