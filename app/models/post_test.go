package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	tests := []struct {
		name    string
		post    *Post
		wantErr bool
	}{
		{
			name: "valid post",
			post: &Post{
				ID:      1,
				Title:   "Valid Title",
				Content: "Some content",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			post: &Post{
				ID:      1,
				Content: "Some content",
			},
			wantErr: true,
		},
		{
			name: "blank title",
			post: &Post{
				ID:      1,
				Title:   "   ",
				Content: "Some content",
			},
			wantErr: true,
		},
		{
			name: "missing content",
			post: &Post{
				ID:    1,
				Title: "Valid Title",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreatePostRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreatePostRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     &CreatePostRequest{Title: "A", Content: "B", Tags: []string{"x", "y"}},
			wantErr: false,
		},
		{
			name:    "blank title",
			req:     &CreatePostRequest{Title: " ", Content: "B"},
			wantErr: true,
		},
		{
			name:    "missing content",
			req:     &CreatePostRequest{Title: "A"},
			wantErr: true,
		},
		{
			name:    "author too short",
			req:     &CreatePostRequest{Title: "A", Content: "B", Author: "ab"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePostRequestValidation(t *testing.T) {
	title := "New Title"
	blank := "  "

	assert.NoError(t, (&UpdatePostRequest{Title: &title}).Validate())
	assert.NoError(t, (&UpdatePostRequest{}).Validate())
	assert.Error(t, (&UpdatePostRequest{Title: &blank}).Validate())
	assert.Error(t, (&UpdatePostRequest{Content: &blank}).Validate())
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "lowercases and slugifies",
			in:   []string{"Go Lang", "WEB"},
			want: []string{"go-lang", "web"},
		},
		{
			name: "removes duplicates",
			in:   []string{"go", "Go", "go"},
			want: []string{"go"},
		},
		{
			name: "drops blanks",
			in:   []string{"", "  ", "go"},
			want: []string{"go"},
		},
		{
			name: "preserves first occurrence order",
			in:   []string{"b", "a", "b"},
			want: []string{"b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

func TestHasTag(t *testing.T) {
	post := &Post{Tags: []string{"go", "web-dev"}}

	assert.True(t, post.HasTag("go"))
	assert.True(t, post.HasTag("Web Dev"))
	assert.False(t, post.HasTag("rust"))
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{Title: "T", Content: "C", Tags: []string{"Go", "go"}}
	post.BeforeCreate()

	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.Equal(t, []string{"go"}, post.Tags)
}
