package setup

import (
	"context"
	"log/slog"

	"notes-api/app"
	"notes-api/config"
	"notes-api/database"
)

// InitDatabase opens the configured database and ensures the schema exists
func InitDatabase(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "driver", cfg.Driver, "host", cfg.Host, "name", cfg.Name)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	application := app.New(db, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown releases long-lived resources
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
