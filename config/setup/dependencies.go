package setup

import (
	"context"
	"kartvizid/app"
	"kartvizid/cache"
	"kartvizid/config"
	"kartvizid/database"
	"kartvizid/housekeeping"
	"kartvizid/viewguard"
	"log/slog"
	"time"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitCache connects to Redis when configured and falls back to an
// in-process cache otherwise
func InitCache(cfg *config.Config, logger *slog.Logger) cache.Cache {
	if cfg.RedisURL == "" {
		logger.Info("cache initialized", "backend", "memory")
		return cache.NewMemoryCache()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rc, err := cache.NewRedisCache(ctx, cfg.RedisURL, "kartvizid:")
	if err != nil {
		logger.Warn("redis unavailable, using memory cache", "error", err)
		return cache.NewMemoryCache()
	}

	logger.Info("cache initialized", "backend", "redis")
	return rc
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, cfg *config.Config, logger *slog.Logger) (*app.App, *housekeeping.Worker) {
	repo := database.NewRepository(db)
	c := InitCache(cfg, logger)

	views := viewguard.NewStore(cfg.ViewWindow)
	logger.Info("view guard initialized", "window", cfg.ViewWindow)

	worker := housekeeping.NewWorker(repo, views, cfg.NotificationRetention, logger)
	worker.Start()

	application := app.New(repo, c, views, logger)
	logger.Info("application initialized with dependency injection")

	return application, worker
}

// Shutdown performs graceful shutdown of all services
func Shutdown(application *app.App, worker *housekeeping.Worker, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if worker != nil {
		worker.Stop()
	}

	if application != nil {
		if closer, ok := application.Cache.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				logger.Warn("failed to close cache", "error", err)
			}
		}
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
