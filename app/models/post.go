package models

import (
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := asValidationError(validate.Struct(p)); err != nil {
		return err
	}

	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title cannot be blank")
	}
	if strings.TrimSpace(p.Content) == "" {
		return NewValidationError("content cannot be blank")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt
	p.Tags = NormalizeTags(p.Tags)
}

// HasTag reports whether the post carries the given tag after
// normalization.
func (p *Post) HasTag(tag string) bool {
	want := slug.Make(tag)
	for _, t := range p.Tags {
		if t == want {
			return true
		}
	}
	return false
}

// NormalizeTags slugifies tags and removes duplicates and blanks,
// preserving first-occurrence order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		s := slug.Make(t)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		normalized = append(normalized, s)
	}
	return normalized
}

// Validate checks a create payload.
func (r *CreatePostRequest) Validate() error {
	if err := asValidationError(validate.Struct(r)); err != nil {
		return err
	}
	if strings.TrimSpace(r.Title) == "" {
		return NewValidationError("title cannot be blank")
	}
	if strings.TrimSpace(r.Content) == "" {
		return NewValidationError("content cannot be blank")
	}
	return nil
}

// Validate checks an update payload.
func (r *UpdatePostRequest) Validate() error {
	if err := asValidationError(validate.Struct(r)); err != nil {
		return err
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return NewValidationError("title cannot be blank")
	}
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		return NewValidationError("content cannot be blank")
	}
	return nil
}
