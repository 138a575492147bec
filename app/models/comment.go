package models

import (
	"strings"
	"time"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := asValidationError(validate.Struct(c)); err != nil {
		return err
	}

	if strings.TrimSpace(c.Author) == "" {
		return NewValidationError("author cannot be blank")
	}
	if strings.TrimSpace(c.Content) == "" {
		return NewValidationError("content cannot be blank")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}

// Validate checks a comment create payload.
func (r *CreateCommentRequest) Validate() error {
	if err := asValidationError(validate.Struct(r)); err != nil {
		return err
	}
	if strings.TrimSpace(r.Author) == "" {
		return NewValidationError("author cannot be blank")
	}
	if strings.TrimSpace(r.Content) == "" {
		return NewValidationError("content cannot be blank")
	}
	return nil
}
