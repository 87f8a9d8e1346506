package database

import (
	"context"

	"notes-api/models"

	"github.com/jmoiron/sqlx"
)

// ==================== NOTE OPERATIONS ====================

// ListNotes returns every note in insertion order
func (r *Repository) ListNotes(ctx context.Context) ([]models.Note, error) {
	// Initialize with empty slice to avoid returning nil
	notes := make([]models.Note, 0)

	err := r.db.WithConn(ctx, func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &notes, conn.Rebind(`
			SELECT id, title, content
			FROM notes
			ORDER BY id ASC
		`))
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// CreateNote inserts a note and returns it with the id assigned by the store
func (r *Repository) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	note := &models.Note{Title: title, Content: content}

	err := r.db.WithConn(ctx, func(conn *sqlx.Conn) error {
		return conn.QueryRowxContext(ctx, conn.Rebind(`
			INSERT INTO notes (title, content)
			VALUES (?, ?)
			RETURNING id
		`), title, content).Scan(&note.ID)
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}
