package services

import (
	"testing"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageStore struct {
	removed []*models.Post
}

func (f *fakeImageStore) Remove(post *models.Post) error {
	f.removed = append(f.removed, post)
	return nil
}

func newTestPostService() (*PostService, *mock.PostRepository, *mock.CommentRepository, *fakeImageStore) {
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	images := &fakeImageStore{}
	return NewPostService(postRepo, commentRepo, images), postRepo, commentRepo, images
}

func TestCreatePost(t *testing.T) {
	svc, _, _, _ := newTestPostService()

	t.Run("creates a valid post", func(t *testing.T) {
		post, err := svc.CreatePost(&models.CreatePostRequest{
			Title:   "A",
			Content: "B",
			Tags:    []string{"x", "y"},
		})
		require.NoError(t, err)
		assert.Greater(t, post.ID, 0)
		assert.Equal(t, "A", post.Title)
		assert.Equal(t, []string{"x", "y"}, post.Tags)
		assert.Nil(t, post.ImageURL)
		assert.False(t, post.CreatedAt.IsZero())

		fetched, err := svc.GetPost(post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.Title, fetched.Title)
		assert.Equal(t, post.Content, fetched.Content)
		assert.Equal(t, post.Tags, fetched.Tags)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		_, err := svc.CreatePost(&models.CreatePostRequest{Content: "B"})
		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("normalizes duplicate tags", func(t *testing.T) {
		post, err := svc.CreatePost(&models.CreatePostRequest{
			Title:   "T",
			Content: "C",
			Tags:    []string{"Go", "go", "Web Dev"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "web-dev"}, post.Tags)
	})
}

func TestViewPost(t *testing.T) {
	svc, _, _, _ := newTestPostService()

	post, err := svc.CreatePost(&models.CreatePostRequest{Title: "T", Content: "C"})
	require.NoError(t, err)
	assert.Equal(t, 0, post.Views)

	viewed, err := svc.ViewPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, viewed.Views)

	viewed, err = svc.ViewPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, viewed.Views)

	_, err = svc.ViewPost(99999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdatePost(t *testing.T) {
	svc, _, _, _ := newTestPostService()

	post, err := svc.CreatePost(&models.CreatePostRequest{
		Title:   "Original",
		Content: "Content",
		Tags:    []string{"a"},
	})
	require.NoError(t, err)

	t.Run("applies partial updates", func(t *testing.T) {
		title := "Updated"
		updated, err := svc.UpdatePost(post.ID, &models.UpdatePostRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Updated", updated.Title)
		assert.Equal(t, "Content", updated.Content)
		assert.Equal(t, []string{"a"}, updated.Tags)
	})

	t.Run("normalizes replacement tags", func(t *testing.T) {
		tags := []string{"New Tag", "new-tag"}
		updated, err := svc.UpdatePost(post.ID, &models.UpdatePostRequest{Tags: &tags})
		require.NoError(t, err)
		assert.Equal(t, []string{"new-tag"}, updated.Tags)
	})

	t.Run("missing post returns ErrNotFound", func(t *testing.T) {
		title := "Ghost"
		_, err := svc.UpdatePost(99999, &models.UpdatePostRequest{Title: &title})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		blank := "  "
		_, err := svc.UpdatePost(post.ID, &models.UpdatePostRequest{Title: &blank})
		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestDeletePost(t *testing.T) {
	svc, postRepo, commentRepo, images := newTestPostService()
	commentSvc := NewCommentService(commentRepo, postRepo)

	post, err := svc.CreatePost(&models.CreatePostRequest{Title: "T", Content: "C"})
	require.NoError(t, err)

	_, err = commentSvc.CreateComment(post.ID, &models.CreateCommentRequest{Author: "Reader", Content: "Hi"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(post.ID))

	_, err = svc.GetPost(post.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	comments, err := commentRepo.ListByPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	assert.Len(t, images.removed, 1)

	assert.ErrorIs(t, svc.DeletePost(post.ID), repositories.ErrNotFound)
}

func TestQueryPagination(t *testing.T) {
	svc, _, _, _ := newTestPostService()

	for i := 0; i < 5; i++ {
		_, err := svc.CreatePost(&models.CreatePostRequest{Title: "Post", Content: "Content"})
		require.NoError(t, err)
	}

	t.Run("pages are stable with no overlap or omission", func(t *testing.T) {
		seen := make(map[int]bool)
		sizes := []int{}
		for page := 1; page <= 3; page++ {
			result, err := svc.Query(QueryOptions{Page: page, PageSize: 2})
			require.NoError(t, err)
			assert.Equal(t, 5, result.Total)
			assert.Equal(t, 3, result.TotalPages)
			sizes = append(sizes, len(result.Items))
			for _, p := range result.Items {
				assert.False(t, seen[p.ID], "post %d returned twice", p.ID)
				seen[p.ID] = true
			}
		}
		assert.Equal(t, []int{2, 2, 1}, sizes)
		assert.Len(t, seen, 5)
	})

	t.Run("ordering is newest first with ID tiebreak", func(t *testing.T) {
		result, err := svc.Query(QueryOptions{Page: 1, PageSize: 5})
		require.NoError(t, err)
		for i := 1; i < len(result.Items); i++ {
			prev, cur := result.Items[i-1], result.Items[i]
			ok := prev.CreatedAt.After(cur.CreatedAt) ||
				(prev.CreatedAt.Equal(cur.CreatedAt) && prev.ID > cur.ID)
			assert.True(t, ok, "items %d and %d out of order", i-1, i)
		}
	})

	t.Run("out of range page returns empty items", func(t *testing.T) {
		result, err := svc.Query(QueryOptions{Page: 10, PageSize: 2})
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.NotNil(t, result.Items)
		assert.Equal(t, 5, result.Total)
	})

	t.Run("defaults applied for zero values", func(t *testing.T) {
		result, err := svc.Query(QueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, defaultPageSize, result.PageSize)
	})
}

func TestQueryFilters(t *testing.T) {
	svc, _, _, _ := newTestPostService()

	published := true
	mk := func(title, content string, tags []string, pub bool) *models.Post {
		post, err := svc.CreatePost(&models.CreatePostRequest{
			Title:     title,
			Content:   content,
			Tags:      tags,
			Published: pub,
		})
		require.NoError(t, err)
		return post
	}

	hello := mk("Hello World", "greetings", []string{"go", "web"}, true)
	golang := mk("Golang Tips", "useful go tricks", []string{"go"}, false)
	other := mk("Cooking", "recipes about the world", []string{"food"}, true)

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		result, err := svc.Query(QueryOptions{Search: "hello"})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, hello.ID, result.Items[0].ID)
	})

	t.Run("search matches content too", func(t *testing.T) {
		result, err := svc.Query(QueryOptions{Search: "WORLD"})
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
	})

	t.Run("tag filter is exact membership", func(t *testing.T) {
		result, err := svc.Query(QueryOptions{Tag: "go"})
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		ids := []int{result.Items[0].ID, result.Items[1].ID}
		assert.ElementsMatch(t, []int{hello.ID, golang.ID}, ids)

		result, err = svc.Query(QueryOptions{Tag: "food"})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, other.ID, result.Items[0].ID)
	})

	t.Run("published filter", func(t *testing.T) {
		result, err := svc.Query(QueryOptions{Published: &published})
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
	})

	t.Run("filters combine: tag then search", func(t *testing.T) {
		result, err := svc.Query(QueryOptions{Tag: "go", Search: "tips"})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, golang.ID, result.Items[0].ID)
	})

	t.Run("no matches yields empty page", func(t *testing.T) {
		result, err := svc.Query(QueryOptions{Search: "nonexistent"})
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Equal(t, 0, result.Total)
	})
}

func TestListByTag(t *testing.T) {
	svc, _, _, _ := newTestPostService()

	_, err := svc.CreatePost(&models.CreatePostRequest{Title: "A", Content: "C", Tags: []string{"go"}})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	second, err := svc.CreatePost(&models.CreatePostRequest{Title: "B", Content: "C", Tags: []string{"Go"}})
	require.NoError(t, err)
	_, err = svc.CreatePost(&models.CreatePostRequest{Title: "D", Content: "C", Tags: []string{"rust"}})
	require.NoError(t, err)

	posts, err := svc.ListByTag("go")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
}
