package app

import (
	"log/slog"

	"notes-api/database"
	"notes-api/services"
	"notes-api/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	DB        *database.DB
	Notes     *services.NoteService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(db *database.DB, logger *slog.Logger) *App {
	return &App{
		DB:        db,
		Notes:     services.NewNoteService(database.NewRepository(db)),
		Validator: validator.New(),
		Logger:    logger,
	}
}
