// internal/domain/models/user.go
package models

import "time"

// User represents an account as the core API serializes it. The same shape
// covers regular users, hosts, and admins; Role distinguishes them.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`   // USER | HOST | ADMIN
	Status       string   `json:"status"` // ACTIVE | INACTIVE
	Bio          string   `json:"bio,omitempty"`
	Location     string   `json:"location,omitempty"`
	ContactNo    string   `json:"contactNo,omitempty"`
	ProfilePhoto string   `json:"profilePhoto,omitempty"`
	Interests    []string `json:"interests,omitempty"`

	NeedsPasswordChange bool `json:"needsPasswordChange,omitempty"`
	IsDeleted           bool `json:"isDeleted,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsActive reports whether the account can act on the platform.
func (u User) IsActive() bool {
	return u.Status == StatusActive && !u.IsDeleted
}
