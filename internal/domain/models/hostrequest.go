// internal/domain/models/hostrequest.go
package models

import "time"

// Host request status values. PENDING is the only live state; approval and
// rejection are terminal.
const (
	HostRequestPending  = "PENDING"
	HostRequestApproved = "APPROVED"
	HostRequestRejected = "REJECTED"
)

// HostRequest is a user's application to become a host.
type HostRequest struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	User   *User  `json:"user,omitempty"`

	Name         string `json:"name"`
	Email        string `json:"email"`
	ContactNo    string `json:"contactNo,omitempty"`
	Location     string `json:"location,omitempty"`
	Bio          string `json:"bio,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`

	Status          string `json:"status"` // PENDING | APPROVED | REJECTED
	RejectionReason string `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
