// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for GatherHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, api_timeout, etc.
//   - Environment variables: GATHERHUB_API_BASE_URL, GATHERHUB_API_TIMEOUT, etc.
//   - Command-line flags: --api_base_url, --api_timeout, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:5000/api/v1", Desc: "Core API base URL"},
	{Name: "api_timeout", Default: "30s", Desc: "Per-request timeout for core API calls (e.g. 30s, 1m)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, GATHERHUB_* for app), and
// command-line flags, merging with precedence flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GATHERHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL: appValues.String("api_base_url"),
		APITimeout: appValues.Duration("api_timeout", 30*time.Second),
		Dev:        coreCfg.Env == "dev",
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// GatherHub validates the core API URL so a malformed one fails here
// rather than on the first proxied request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAPIBaseURL(appCfg.APIBaseURL); err != nil {
		logger.Error("invalid core API base URL", zap.Error(err))
		return err
	}
	if appCfg.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive, got %s", appCfg.APITimeout)
	}
	return nil
}

func validateAPIBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("api_base_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("api_base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_base_url must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("api_base_url is missing a host")
	}
	return nil
}
