// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/lawcrm/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs after DB connection and schema setup, before the HTTP
// handler is built. It records the effective runtime settings.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	t := timeouts.Current()
	logger.Info("lawcrm starting",
		zap.String("env", coreCfg.Env),
		zap.Bool("database_available", deps.MongoDatabase != nil),
		zap.Strings("cors_allowed_origins", appCfg.CORSAllowedOrigins),
		zap.Bool("audit_log", appCfg.AuditLog),
		zap.Duration("timeout_ping", t.Ping),
		zap.Duration("timeout_short", t.Short),
		zap.Duration("timeout_medium", t.Medium),
		zap.Duration("timeout_long", t.Long))
	return nil
}
