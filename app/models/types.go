package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Post represents a blog post.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	Tags      []string  `json:"tags"`
	Author    string    `json:"author,omitempty"`
	Published bool      `json:"published"`
	ImageURL  *string   `json:"image"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment represents a comment on a blog post.
type Comment struct {
	ID        int       `json:"id"`
	PostID    int       `json:"post_id"`
	Author    string    `json:"author" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest is the payload accepted by POST /posts.
type CreatePostRequest struct {
	Title     string   `json:"title" validate:"required"`
	Content   string   `json:"content" validate:"required"`
	Tags      []string `json:"tags" validate:"omitempty,dive,min=1,max=50"`
	Author    string   `json:"author" validate:"omitempty,min=3,max=100"`
	Published bool     `json:"published"`
}

// UpdatePostRequest is the payload accepted by PUT /posts/{id}.
// Nil fields are left unchanged.
type UpdatePostRequest struct {
	Title     *string   `json:"title" validate:"omitempty,min=1"`
	Content   *string   `json:"content" validate:"omitempty,min=1"`
	Tags      *[]string `json:"tags" validate:"omitempty,dive,min=1,max=50"`
	Author    *string   `json:"author" validate:"omitempty,min=3,max=100"`
	Published *bool     `json:"published"`
}

// CreateCommentRequest is the payload accepted by POST /posts/{id}/comments.
type CreateCommentRequest struct {
	Author  string `json:"author" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=1000"`
}

// PostPage is the paginated envelope returned by post listings.
type PostPage struct {
	Items      []*Post `json:"items"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
}

// TagCount pairs a tag with the number of posts carrying it.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats holds the aggregate counters served by GET /stats.
type Stats struct {
	TotalPosts     int            `json:"total_posts"`
	PublishedPosts int            `json:"published_posts"`
	DraftPosts     int            `json:"draft_posts"`
	TotalViews     int            `json:"total_views"`
	TotalComments  int            `json:"total_comments"`
	TagFrequency   map[string]int `json:"tag_frequency"`
	PopularTags    []TagCount     `json:"popular_tags"`
}
