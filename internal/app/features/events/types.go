// internal/app/features/events/types.go
package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/models"
)

// maxUploadSize bounds in-memory parsing of multipart event forms.
const maxUploadSize = 10 << 20

// EventPayload is the typed body of a create or update mutation. It arrives
// as the JSON-encoded "data" field of a multipart form, alongside an
// optional image file.
type EventPayload struct {
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Description     string    `json:"description,omitempty"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location,omitempty"`
	MinParticipants int       `json:"minParticipants"`
	MaxParticipants int       `json:"maxParticipants"`
	JoiningFee      float64   `json:"joiningFee"`
}

// Validate checks a create payload and returns the first field-level
// problem. Nothing is forwarded upstream when it fails.
func (p *EventPayload) Validate() error {
	switch {
	case p.Name == "":
		return errors.New("name is required")
	case p.Type == "":
		return errors.New("type is required")
	case p.Date.IsZero():
		return errors.New("date is required")
	case p.MaxParticipants < 1:
		return errors.New("maxParticipants must be at least 1")
	case p.MinParticipants < 0:
		return errors.New("minParticipants must not be negative")
	case p.MinParticipants > p.MaxParticipants:
		return errors.New("minParticipants must not exceed maxParticipants")
	case p.JoiningFee < 0:
		return errors.New("joiningFee must not be negative")
	}
	return nil
}

// UpdatePayload is a partial event update; only non-nil fields are sent.
type UpdatePayload struct {
	Name            *string    `json:"name,omitempty"`
	Type            *string    `json:"type,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	Location        *string    `json:"location,omitempty"`
	MinParticipants *int       `json:"minParticipants,omitempty"`
	MaxParticipants *int       `json:"maxParticipants,omitempty"`
	JoiningFee      *float64   `json:"joiningFee,omitempty"`
}

// Validate checks whichever fields the update carries.
func (p *UpdatePayload) Validate() error {
	if p.Name != nil && *p.Name == "" {
		return errors.New("name must not be empty")
	}
	if p.Type != nil && *p.Type == "" {
		return errors.New("type must not be empty")
	}
	if p.MaxParticipants != nil && *p.MaxParticipants < 1 {
		return errors.New("maxParticipants must be at least 1")
	}
	if p.MinParticipants != nil && *p.MinParticipants < 0 {
		return errors.New("minParticipants must not be negative")
	}
	if p.JoiningFee != nil && *p.JoiningFee < 0 {
		return errors.New("joiningFee must not be negative")
	}
	return nil
}

// StatusPayload is the body of a status transition. It is deliberately a
// distinct, restricted schema: only the status field, only defined values.
type StatusPayload struct {
	Status string `json:"status"`
}

// Validate rejects anything outside the defined status enum.
func (p *StatusPayload) Validate() error {
	if p.Status == "" {
		return errors.New("status is required")
	}
	if !models.ValidEventStatus(p.Status) {
		return fmt.Errorf("status must be one of %s, %s, %s, %s",
			models.EventOpen, models.EventFull, models.EventCancelled, models.EventCompleted)
	}
	return nil
}
