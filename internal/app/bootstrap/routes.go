// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	analyticsfeature "github.com/dalemusser/lawcrm/internal/app/features/analytics"
	diagnosticsfeature "github.com/dalemusser/lawcrm/internal/app/features/diagnostics"
	"github.com/dalemusser/lawcrm/internal/app/features/documents"
	healthfeature "github.com/dalemusser/lawcrm/internal/app/features/health"
	homefeature "github.com/dalemusser/lawcrm/internal/app/features/home"
	"github.com/dalemusser/lawcrm/internal/app/features/schemainfo"
	settingsfeature "github.com/dalemusser/lawcrm/internal/app/features/settings"
	"github.com/dalemusser/lawcrm/internal/app/store/docstore"
	"github.com/dalemusser/lawcrm/internal/app/system/auditlog"
	"github.com/dalemusser/lawcrm/internal/app/system/httpmetrics"
	"github.com/dalemusser/lawcrm/internal/app/system/reqlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. Every data feature shares one
// docstore.Store; when deps carries no database the store is in its
// unavailable state and the data endpoints answer 500.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	store := docstore.New(deps.MongoDatabase, logger)
	metrics := httpmetrics.New()
	var audit *auditlog.Logger
	if appCfg.AuditLog {
		audit = auditlog.New(logger)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(reqlog.Middleware(logger))
	r.Use(metrics.Middleware)
	r.Use(corsHandler(appCfg.CORSAllowedOrigins))

	// Operational endpoints
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(store, logger)))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Mount("/test", diagnosticsfeature.Routes(diagnosticsfeature.NewHandler(
		store, appCfg.DatabaseURL != "", appCfg.DatabaseName != "", logger)))
	r.Mount("/schema", schemainfo.Routes())

	// Documents
	r.Mount("/customers", documents.Routes(documents.NewHandler(documents.Customers, store, audit, logger)))
	r.Mount("/products", documents.Routes(documents.NewHandler(documents.Products, store, audit, logger)))
	r.Mount("/orders", documents.Routes(documents.NewHandler(documents.Orders, store, audit, logger)))
	r.Mount("/factfinds", documents.Routes(documents.NewHandler(documents.FactFinds, store, audit, logger)))

	r.Mount("/settings", settingsfeature.Routes(settingsfeature.NewHandler(store, audit, logger)))
	r.Mount("/analytics", analyticsfeature.Routes(analyticsfeature.NewHandler(store, logger)))

	// Root
	r.Mount("/", homefeature.Routes(homefeature.NewHandler(logger)))

	return r, nil
}

// corsHandler allows every method and header. With the "*" origin,
// credentials are not allowed since browsers reject that combination.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{reqlog.Header},
		AllowCredentials: !allowAll,
		MaxAge:           300,
	})
}
