// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/gatherhub/gatherhub/internal/gateway"
	"go.uber.org/zap"
)

// ConnectDB builds the app's backend dependencies. The only backend is the
// core API gateway client; constructing it cannot fail, and reachability is
// reported by the health endpoint rather than blocking startup.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	logger.Info("core API client configured",
		zap.String("base_url", appCfg.APIBaseURL),
		zap.Duration("timeout", appCfg.APITimeout))
	return DBDeps{
		API: gateway.New(appCfg.APIBaseURL, appCfg.APITimeout, logger),
	}, nil
}

// EnsureSchema is a no-op: all persistent data lives behind the core API.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
