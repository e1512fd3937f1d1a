package inputval

import "testing"

// The email check gates host applications and profile updates, so the cases
// lean on addresses those forms actually see.
func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"host@gatherhub.io", true},
		{"jane.organizer@gatherhub.io", true},
		{"events+spring@venue.example.com", true},
		{"a@b.co", true},
		{"admin@mail.events.example.co.uk", true},
		{"host@localhost", true}, // single-label domains pass in dev setups

		{"", false},
		{"   ", false},
		{"host", false},
		{"host@", false},
		{"@gatherhub.io", false},

		// net/mail is lenient about dots; these must still be rejected.
		{".host@gatherhub.io", false},
		{"host.@gatherhub.io", false},
		{"jane..organizer@gatherhub.io", false},
		{"host@.gatherhub.io", false},
		{"host@gatherhub..io", false},

		// A pasted address-book entry is not a bare address.
		{"Jane Organizer <host@gatherhub.io>", false},

		{"ho st@gatherhub.io", false},
		{"host@ gatherhub.io", false},
		{"host@gather hub.io", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

// Rating bounds are the main InRange caller; check both edges.
func TestInRange(t *testing.T) {
	tests := []struct {
		name      string
		n, lo, hi int
		want      bool
	}{
		{"lowest rating", 1, 1, 5, true},
		{"highest rating", 5, 1, 5, true},
		{"middle", 3, 1, 5, true},
		{"below", 0, 1, 5, false},
		{"above", 6, 1, 5, false},
		{"negative", -2, 1, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(tt.n, tt.lo, tt.hi); got != tt.want {
				t.Errorf("InRange(%d, %d, %d) = %v, want %v", tt.n, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
