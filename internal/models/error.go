package models

import "strings"

// ErrorResponse is the body returned for lookups that match no row
type ErrorResponse struct {
	Error string `json:"error" example:"Restaurant not found"`
}

// ValidationErrorResponse is the body returned when a write is rejected
type ValidationErrorResponse struct {
	Errors []string `json:"errors" example:"validation errors"`
}

// Message used when the storage layer rejects a write
const GenericValidationMessage = "validation errors"

// ValidationError reports why a write was rejected.
// Messages is never empty.
type ValidationError struct {
	Messages []string
}

// NewValidationError creates a ValidationError, falling back to the generic message
func NewValidationError(messages ...string) *ValidationError {
	if len(messages) == 0 {
		messages = []string{GenericValidationMessage}
	}
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationErrorResponse builds the response body for a ValidationError
func NewValidationErrorResponse(err *ValidationError) ValidationErrorResponse {
	return ValidationErrorResponse{Errors: err.Messages}
}
