// internal/app/features/hostrequests/types.go
package hostrequests

import (
	"errors"

	"github.com/gatherhub/gatherhub/internal/app/system/inputval"
)

// maxUploadSize bounds in-memory parsing of the application form.
const maxUploadSize = 10 << 20

// RequestPayload is the typed body of a host application. It arrives as the
// JSON-encoded "data" field of a multipart form, alongside an optional
// profile photo.
type RequestPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	ContactNo string `json:"contactNo,omitempty"`
	Location  string `json:"location,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// Validate checks an application before anything is forwarded upstream.
func (p *RequestPayload) Validate() error {
	switch {
	case p.Name == "":
		return errors.New("name is required")
	case p.Email == "":
		return errors.New("email is required")
	case !inputval.IsValidEmail(p.Email):
		return errors.New("email is not valid")
	}
	return nil
}

// RejectPayload is the body of a rejection. A reason is mandatory so the
// applicant always learns why.
type RejectPayload struct {
	Reason string `json:"reason"`
}

// Validate rejects an empty reason without any network call.
func (p *RejectPayload) Validate() error {
	if p.Reason == "" {
		return errors.New("rejection reason is required")
	}
	return nil
}
