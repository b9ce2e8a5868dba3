package types

import (
	"errors"
	"fmt"
)

// Standard errors returned by store operations.
var (
	ErrNotFound             = errors.New("entity not found")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// ValidationError reports a request field that violates its constraints.
// Field is a path into the request payload, e.g. "title" or
// "pages[0].actions[2]".
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validation error constructors keep the field-path formatting in one place.

func errRequired(field string) error {
	return &ValidationError{Field: field, Message: "must not be empty"}
}

func errTooLong(field string, max int) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
}
