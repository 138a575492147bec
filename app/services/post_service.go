package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ImageStore removes stored image files when their post goes away.
// Implemented by ImageService.
type ImageStore interface {
	Remove(post *models.Post) error
}

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	images      ImageStore
}

// QueryOptions narrows and pages a post listing. The zero value lists the
// first page of all posts.
type QueryOptions struct {
	Page      int
	PageSize  int
	Search    string
	Tag       string
	Published *bool
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, images ImageStore) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		images:      images,
	}
}

// CreatePost creates a new blog post from a validated payload
func (s *PostService) CreatePost(req *models.CreatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Author:    req.Author,
		Published: req.Published,
	}
	post.BeforeCreate()

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ViewPost retrieves a post and records the view
func (s *PostService) ViewPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.Views++
	if err := s.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to record view: %v", err)
	}
	return post, nil
}

// Query filters, orders, and pages the post collection. Filters apply in
// a fixed order: tag, published, then search. Results are ordered newest
// first with ties broken by descending ID so pagination is deterministic.
func (s *PostService) Query(opts QueryOptions) (*models.PostPage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = defaultPageSize
	}
	if opts.PageSize > maxPageSize {
		opts.PageSize = maxPageSize
	}

	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	if opts.Tag != "" {
		posts = filterPosts(posts, func(p *models.Post) bool {
			return p.HasTag(opts.Tag)
		})
	}
	if opts.Published != nil {
		posts = filterPosts(posts, func(p *models.Post) bool {
			return p.Published == *opts.Published
		})
	}
	if opts.Search != "" {
		term := strings.ToLower(opts.Search)
		posts = filterPosts(posts, func(p *models.Post) bool {
			return strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(p.Content), term)
		})
	}

	sortPostsNewestFirst(posts)

	total := len(posts)
	totalPages := (total + opts.PageSize - 1) / opts.PageSize
	start := (opts.Page - 1) * opts.PageSize
	end := start + opts.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := posts[start:end]
	if items == nil {
		items = []*models.Post{}
	}

	return &models.PostPage{
		Items:      items,
		Total:      total,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: totalPages,
	}, nil
}

// ListByTag returns all posts carrying the given tag, newest first
func (s *PostService) ListByTag(tag string) ([]*models.Post, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	matched := filterPosts(posts, func(p *models.Post) bool {
		return p.HasTag(tag)
	})
	sortPostsNewestFirst(matched)
	if matched == nil {
		matched = []*models.Post{}
	}
	return matched, nil
}

// UpdatePost applies a partial update to an existing post
func (s *PostService) UpdatePost(id int, req *models.UpdatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Tags != nil {
		post.Tags = models.NormalizeTags(*req.Tags)
	}
	if req.Author != nil {
		post.Author = *req.Author
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post, its comments, and its stored image
func (s *PostService) DeletePost(id int) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.commentRepo.DeleteByPost(id); err != nil {
		return fmt.Errorf("failed to delete comments: %v", err)
	}

	if s.images != nil {
		if err := s.images.Remove(post); err != nil {
			return fmt.Errorf("failed to remove image: %v", err)
		}
	}

	return s.postRepo.Delete(id)
}

func filterPosts(posts []*models.Post, keep func(*models.Post) bool) []*models.Post {
	filtered := posts[:0:0]
	for _, p := range posts {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func sortPostsNewestFirst(posts []*models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
}
