// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, CORS, and request size limits.
// AppConfig is where everything specific to this application lives.
type AppConfig struct {
	// Core API configuration. Every data read and write this service
	// performs goes through that API.
	APIBaseURL string        // e.g. "http://localhost:5000/api/v1"
	APITimeout time.Duration // per-request ceiling for upstream calls

	// Dev relaxes error sanitization: unexpected failures return their
	// real message instead of a generic one.
	Dev bool
}
