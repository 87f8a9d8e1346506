package validator

import (
	"errors"
	"testing"

	"notes-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestTitleLimitRequest struct {
	Title string `json:"title" validate:"max=5"`
}

func TestValidator_CreateNote(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateNoteRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid note request",
			req:       models.CreateNoteRequest{Title: "Groceries", Content: "Milk, eggs"},
			wantError: false,
		},
		{
			name:      "Single character fields",
			req:       models.CreateNoteRequest{Title: "a", Content: "b"},
			wantError: false,
		},
		{
			name:      "Whitespace is not trimmed",
			req:       models.CreateNoteRequest{Title: " ", Content: " "},
			wantError: false,
		},
		{
			name:      "Missing title",
			req:       models.CreateNoteRequest{Title: "", Content: "x"},
			wantError: true,
			errorMsg:  "title is required",
		},
		{
			name:      "Missing content",
			req:       models.CreateNoteRequest{Title: "x", Content: ""},
			wantError: true,
			errorMsg:  "content is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_FieldDetails(t *testing.T) {
	v := New()

	err := v.Validate(&models.CreateNoteRequest{})
	require.Error(t, err)

	var validationErrs ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Len(t, validationErrs, 2)

	assert.Equal(t, "title", validationErrs[0].Field)
	assert.Equal(t, "required", validationErrs[0].Tag)
	assert.Equal(t, "content", validationErrs[1].Field)
}

func TestValidator_MaxMessage(t *testing.T) {
	v := New()

	err := v.Validate(&TestTitleLimitRequest{Title: "too long"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title must be at most 5 characters")
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "title", Message: "title is required", Tag: "required"},
		{Field: "content", Message: "content is required", Tag: "required"},
	}

	errMsg := errs.Error()
	assert.Contains(t, errMsg, "title is required")
	assert.Contains(t, errMsg, "content is required")
}
