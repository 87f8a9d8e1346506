package services

import (
	"context"

	"notes-api/models"
)

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, title, content string) (*models.Note, error)
}
