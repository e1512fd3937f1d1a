// internal/app/system/inputval/inputval.go

// Package inputval holds small boundary validators for user-supplied
// values. Mutation payloads call these before anything is forwarded
// upstream, so a validation failure never costs a network round trip.
package inputval

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether s is a plausible bare email address.
// Display-name forms ("Name <a@b>") are rejected; so are leading/trailing
// or consecutive dots in either side, which net/mail is lenient about in
// the domain.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	at := strings.LastIndex(s, "@")
	local, domain := s[:at], s[at+1:]
	for _, part := range []string{local, domain} {
		if part == "" ||
			strings.HasPrefix(part, ".") ||
			strings.HasSuffix(part, ".") ||
			strings.Contains(part, "..") {
			return false
		}
	}
	return true
}

// InRange reports whether n lies in [lo, hi].
func InRange(n, lo, hi int) bool {
	return n >= lo && n <= hi
}
