package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/google/uuid"
)

// ImageService stores uploaded post images on disk and links them to
// their post. The post record is only updated after the file write has
// succeeded, so a failed upload never leaves a dangling image reference.
type ImageService struct {
	postRepo  repositories.PostRepository
	uploadDir string
}

// NewImageService creates a new ImageService rooted at uploadDir
func NewImageService(postRepo repositories.PostRepository, uploadDir string) *ImageService {
	return &ImageService{
		postRepo:  postRepo,
		uploadDir: uploadDir,
	}
}

// UploadDir returns the directory uploaded images are stored in
func (s *ImageService) UploadDir() string {
	return s.uploadDir
}

// Store persists an uploaded image and attaches it to the post
func (s *ImageService) Store(postID int, file multipart.File, header *multipart.FileHeader) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return nil, models.NewValidationError("file must be an image")
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %v", err)
	}

	name := uuid.NewString() + filepath.Ext(header.Filename)
	path := filepath.Join(s.uploadDir, name)

	if err := writeFile(path, file); err != nil {
		return nil, err
	}

	// Replace any previously stored image once the new file is in place.
	old := post.ImageURL

	url := "/uploads/" + name
	post.ImageURL = &url
	post.UpdatedAt = time.Now()
	if err := s.postRepo.Update(post); err != nil {
		os.Remove(path)
		return nil, err
	}

	if old != nil {
		s.removeFile(*old)
	}

	return post, nil
}

// Remove deletes the post's stored image file, if any. A file already
// missing on disk is not an error.
func (s *ImageService) Remove(post *models.Post) error {
	if post.ImageURL == nil {
		return nil
	}
	return s.removeFile(*post.ImageURL)
}

func (s *ImageService) removeFile(url string) error {
	name := filepath.Base(url)
	err := os.Remove(filepath.Join(s.uploadDir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// writeFile copies the upload to path, removing the partial file if the
// copy or flush fails.
func writeFile(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %v", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write image file: %v", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to flush image file: %v", err)
	}
	return nil
}
