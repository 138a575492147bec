package models

import "github.com/go-playground/validator/v10"

// ValidationError marks a payload that failed validation. Controllers map
// it to a client error response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// asValidationError converts validator failures into a ValidationError,
// passing other errors through unchanged.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(validator.ValidationErrors); ok {
		return &ValidationError{msg: err.Error()}
	}
	return err
}
