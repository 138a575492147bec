package services

import (
	"sort"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment creates a new comment under an existing post
func (s *CommentService) CreateComment(postID int, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Verify post exists
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		Author:  req.Author,
		Content: req.Content,
	}
	comment.BeforeCreate()

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id int) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// ListPostComments retrieves all comments for a post, newest first
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	// Verify post exists
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})

	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// DeleteComment deletes a comment
func (s *CommentService) DeleteComment(id int) error {
	// Verify comment exists
	if _, err := s.commentRepo.GetByID(id); err != nil {
		return err
	}

	return s.commentRepo.Delete(id)
}
