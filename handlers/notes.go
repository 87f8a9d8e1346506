package handlers

import (
	"errors"

	"notes-api/app"
	"notes-api/metrics"
	"notes-api/models"
	"notes-api/services"
	"notes-api/validator"

	"github.com/gofiber/fiber/v2"
)

const (
	welcomeMessage     = "Welcome to the notes API!"
	noteCreatedMessage = "Note created successfully"
)

// Root returns the static welcome payload
func Root(c *fiber.Ctx) error {
	return success(c, fiber.Map{"message": welcomeMessage})
}

// ListNotes returns every stored note
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.List(c.UserContext())
		if err != nil {
			return serverErrorWithDetails(a, c, services.ErrDatabaseAccess.Error(), err)
		}

		return success(c, fiber.Map{"notes": notes})
	}
}

// CreateNote validates the payload and persists a new note
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return unprocessable(c, "invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				return unprocessable(c, validationErrs)
			}
			return unprocessable(c, err.Error())
		}

		note, err := a.Notes.Create(c.UserContext(), req.Title, req.Content)
		if err != nil {
			if errors.Is(err, services.ErrSaveNote) {
				return serverErrorWithDetails(a, c, services.ErrSaveNote.Error(), err)
			}
			return err
		}
		metrics.RecordNoteCreated()

		return success(c, fiber.Map{
			"message": noteCreatedMessage,
			"note":    note,
		})
	}
}
