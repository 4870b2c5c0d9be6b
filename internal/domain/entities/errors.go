package entities

import "fmt"

// Error taxonomy shared by every use case:
//
//   - ValidationError: a field failed its declared constraint on create/update.
//   - NotFoundError: an operation referenced a nonexistent id.
//   - IntegrityError: a delete would orphan dependent records.
//
// All three are recoverable by the caller; none requires process-level
// recovery. Handlers match them with errors.As and translate to HTTP codes.

type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

type IntegrityError struct {
	Reason string
}

func NewIntegrityError(reason string) *IntegrityError {
	return &IntegrityError{Reason: reason}
}

func (e *IntegrityError) Error() string {
	return e.Reason
}
