// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings such as ports, TLS and logging.
//
// DatabaseURL and DatabaseName default to empty. The service still starts
// without them: data endpoints answer "Database not available" and /test
// reports which setting is missing.
type AppConfig struct {
	// MongoDB connection configuration
	DatabaseURL      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	DatabaseName     string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// CORS; "*" allows every origin.
	CORSAllowedOrigins []string

	// AuditLog enables an audit log line for every successful write.
	AuditLog bool
}

// DatabaseConfigured reports whether both connection settings are present.
func (c AppConfig) DatabaseConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseName != ""
}
