package services

import "errors"

// Note errors. Their messages are returned to clients verbatim, so they
// must never carry storage details.
var (
	ErrDatabaseAccess = errors.New("database access error")
	ErrSaveNote       = errors.New("failed to save note")
)
