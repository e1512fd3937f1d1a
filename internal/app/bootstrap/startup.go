// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/gatherhub/gatherhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after backends are
// connected but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	// The longest per-operation ceiling tracks the client-wide APITimeout.
	timeouts.Configure(timeouts.Config{Long: appCfg.APITimeout})
	return nil
}
