package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrHabitNotFound      = errors.New("habit not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a missing or malformed request field before any
// engine logic runs.
type ValidationError struct {
	Field   string
	Message string
}

func (validationError *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", validationError.Field, validationError.Message)
}

func newValidationError(field string, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// CascadeDeleteError reports a habit deletion whose follow-up entry cleanup
// failed. The habit row is already gone when this error is returned.
type CascadeDeleteError struct {
	HabitID uint
	Cause   error
}

func (cascadeError *CascadeDeleteError) Error() string {
	return fmt.Sprintf("habit %d deleted, progress cleanup failed: %v", cascadeError.HabitID, cascadeError.Cause)
}

func (cascadeError *CascadeDeleteError) Unwrap() error {
	return cascadeError.Cause
}
