// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/lawcrm/internal/app/system/indexes"
	"github.com/dalemusser/lawcrm/internal/app/system/timeouts"
	"github.com/dalemusser/lawcrm/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB. A missing configuration or a failed
// connection is logged and yields empty DBDeps rather than an error: the
// service keeps running and reports the database as unavailable.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if !appCfg.DatabaseConfigured() {
		logger.Warn("database not configured; starting without MongoDB",
			zap.Bool("database_url_set", appCfg.DatabaseURL != ""),
			zap.Bool("database_name_set", appCfg.DatabaseName != ""))
		return DBDeps{}, nil
	}

	opts := options.Client().
		ApplyURI(appCfg.DatabaseURL).
		SetServerSelectionTimeout(timeouts.Short())
	if appCfg.MongoMaxPoolSize > 0 {
		opts.SetMaxPoolSize(appCfg.MongoMaxPoolSize)
	}
	if appCfg.MongoMinPoolSize > 0 {
		opts.SetMinPoolSize(appCfg.MongoMinPoolSize)
	}

	cctx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	client, err := mongo.Connect(cctx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed; starting without database", zap.Error(err))
		return DBDeps{}, nil
	}
	if err := client.Ping(cctx, readpref.Primary()); err != nil {
		logger.Error("MongoDB ping failed; starting without database", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return DBDeps{}, nil
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.DatabaseName))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.DatabaseName),
	}, nil
}

// EnsureSchema creates collections, attaches validators and ensures
// indexes. It is a no-op when there is no database.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	sctx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	// Validators are advisory: the request layer already enforces the rules.
	if err := validators.EnsureAll(sctx, deps.MongoDatabase); err != nil {
		logger.Warn("collection validators not fully applied", zap.Error(err))
	}
	if err := indexes.EnsureAll(sctx, deps.MongoDatabase); err != nil {
		logger.Error("index setup failed", zap.Error(err))
		return err
	}
	return nil
}
