// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/lawcrm/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvPrefix prefixes every app environment variable (LAWCRM_DATABASE_URL, ...).
const EnvPrefix = "LAWCRM"

// appConfigKeys defines the configuration keys for LawCRM.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: database_url, database_name, etc.
//   - Environment variables: LAWCRM_DATABASE_URL, LAWCRM_DATABASE_NAME, etc.
//   - Command-line flags: --database_url, --database_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "database_url", Default: "", Desc: "MongoDB connection URI (blank disables the database)"},
	{Name: "database_name", Default: "", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 0, Desc: "MongoDB min connection pool size (default: 0)"},
	{Name: "cors_allowed_origins", Default: "*", Desc: "Comma-separated CORS origins; * allows all"},
	{Name: "audit_log", Default: true, Desc: "Log an audit event for every successful create, update and delete"},
}

// LoadConfig loads WAFFLE core config and app-specific config, then applies
// any LAWCRM_TIMEOUT_* overrides.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DatabaseURL:        strings.TrimSpace(appValues.String("database_url")),
		DatabaseName:       strings.TrimSpace(appValues.String("database_name")),
		MongoMaxPoolSize:   uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize:   uint64(appValues.Int("mongo_min_pool_size")),
		CORSAllowedOrigins: splitOrigins(appValues.String("cors_allowed_origins")),
		AuditLog:           appValues.Bool("audit_log"),
	}

	if _, err := timeouts.ConfigureFromEnv(EnvPrefix + "_"); err != nil {
		return nil, AppConfig{}, fmt.Errorf("timeouts: %w", err)
	}

	return coreCfg, appCfg, nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Missing database settings are not fatal; they are logged so the
// operator can see why the data endpoints are unavailable. A URI that is
// present but malformed aborts startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.DatabaseURL == "" {
		logger.Warn("database_url not set; data endpoints will be unavailable")
	} else if err := wafflemongo.ValidateURI(appCfg.DatabaseURL); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.DatabaseName == "" {
		logger.Warn("database_name not set; data endpoints will be unavailable")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize && appCfg.MongoMaxPoolSize != 0 {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	return nil
}
