// internal/domain/models/event.go
package models

import "time"

// Event status values. OPEN/FULL are live states; CANCELLED and COMPLETED
// are terminal. FULL is computed by the core API when the participant count
// reaches MaxParticipants and may be reopened by a host or admin.
const (
	EventOpen      = "OPEN"
	EventFull      = "FULL"
	EventCancelled = "CANCELLED"
	EventCompleted = "COMPLETED"
)

// ValidEventStatus reports whether s is a defined event status.
func ValidEventStatus(s string) bool {
	switch s {
	case EventOpen, EventFull, EventCancelled, EventCompleted:
		return true
	}
	return false
}

// Event is an event as the core API serializes it.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	Image       string    `json:"image,omitempty"`

	MinParticipants     int `json:"minParticipants"`
	MaxParticipants     int `json:"maxParticipants"`
	CurrentParticipants int `json:"currentParticipants"`

	JoiningFee float64 `json:"joiningFee"`
	Status     string  `json:"status"` // OPEN | FULL | CANCELLED | COMPLETED

	HostID string `json:"hostId"`
	Host   *User  `json:"host,omitempty"`

	Participants []Participant `json:"participants,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsPast reports whether the event date is before now.
func (e Event) IsPast(now time.Time) bool {
	return e.Date.Before(now)
}

// IsFree reports whether joining requires no payment.
func (e Event) IsFree() bool {
	return e.JoiningFee <= 0
}

// Participant is the join record between a user and an event.
type Participant struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	EventID  string    `json:"eventId"`
	JoinedAt time.Time `json:"joinedAt"`
	User     *User     `json:"user,omitempty"`
	Event    *Event    `json:"event,omitempty"`
}
