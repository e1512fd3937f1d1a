// internal/domain/models/review.go
package models

import "time"

// Review is a rating left by a participant for a past event. Reviews are
// immutable once created; there is no update or delete path.
type Review struct {
	ID      string `json:"id"`
	Rating  int    `json:"rating"` // 1..5
	Comment string `json:"comment,omitempty"`

	UserID  string `json:"userId"` // reviewer
	HostID  string `json:"hostId"` // event owner at review time
	EventID string `json:"eventId"`

	User  *User  `json:"user,omitempty"`
	Event *Event `json:"event,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
