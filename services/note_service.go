package services

import (
	"context"
	"fmt"

	"notes-api/models"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// List returns all stored notes. Storage failures wrap ErrDatabaseAccess.
func (ns *NoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := ns.repo.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseAccess, err)
	}
	if notes == nil {
		notes = make([]models.Note, 0)
	}
	return notes, nil
}

// Create persists a new note. Storage failures wrap ErrSaveNote.
func (ns *NoteService) Create(ctx context.Context, title, content string) (*models.Note, error) {
	note, err := ns.repo.CreateNote(ctx, title, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveNote, err)
	}
	return note, nil
}
