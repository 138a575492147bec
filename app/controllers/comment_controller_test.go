package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentControllerCreate(t *testing.T) {
	router, _ := newTestRouter(t)

	post := decodePost(t, doJSON(t, router, "POST", "/posts", map[string]interface{}{
		"title": "T", "content": "C",
	}))

	t.Run("creates comment under existing post", func(t *testing.T) {
		rw := doJSON(t, router, "POST", fmt.Sprintf("/posts/%d/comments", post.ID), map[string]interface{}{
			"author": "Reader", "content": "Nice",
		})
		assert.Equal(t, http.StatusCreated, rw.Code)

		var comment models.Comment
		require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &comment))
		assert.Equal(t, post.ID, comment.PostID)
		assert.Greater(t, comment.ID, 0)
	})

	t.Run("missing post returns 404", func(t *testing.T) {
		rw := doJSON(t, router, "POST", "/posts/999/comments", map[string]interface{}{
			"author": "Reader", "content": "Nice",
		})
		assert.Equal(t, http.StatusNotFound, rw.Code)
	})

	t.Run("invalid payload returns 400", func(t *testing.T) {
		rw := doJSON(t, router, "POST", fmt.Sprintf("/posts/%d/comments", post.ID), map[string]interface{}{
			"content": "no author",
		})
		assert.Equal(t, http.StatusBadRequest, rw.Code)
	})
}

func TestCommentControllerIndex(t *testing.T) {
	router, _ := newTestRouter(t)

	post := decodePost(t, doJSON(t, router, "POST", "/posts", map[string]interface{}{
		"title": "T", "content": "C",
	}))

	for i := 0; i < 2; i++ {
		rw := doJSON(t, router, "POST", fmt.Sprintf("/posts/%d/comments", post.ID), map[string]interface{}{
			"author": "Reader", "content": fmt.Sprintf("comment %d", i),
		})
		require.Equal(t, http.StatusCreated, rw.Code)
	}

	rw := doJSON(t, router, "GET", fmt.Sprintf("/posts/%d/comments", post.ID), nil)
	assert.Equal(t, http.StatusOK, rw.Code)

	var comments []models.Comment
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &comments))
	assert.Len(t, comments, 2)

	t.Run("missing post returns 404", func(t *testing.T) {
		rw := doJSON(t, router, "GET", "/posts/999/comments", nil)
		assert.Equal(t, http.StatusNotFound, rw.Code)
	})

	t.Run("post without comments returns empty array", func(t *testing.T) {
		other := decodePost(t, doJSON(t, router, "POST", "/posts", map[string]interface{}{
			"title": "Other", "content": "C",
		}))
		rw := doJSON(t, router, "GET", fmt.Sprintf("/posts/%d/comments", other.ID), nil)
		assert.Equal(t, http.StatusOK, rw.Code)
		assert.JSONEq(t, `[]`, rw.Body.String())
	})
}

func TestCommentControllerDelete(t *testing.T) {
	router, _ := newTestRouter(t)

	post := decodePost(t, doJSON(t, router, "POST", "/posts", map[string]interface{}{
		"title": "T", "content": "C",
	}))
	rw := doJSON(t, router, "POST", fmt.Sprintf("/posts/%d/comments", post.ID), map[string]interface{}{
		"author": "Reader", "content": "bye",
	})
	var comment models.Comment
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &comment))

	rw = doJSON(t, router, "DELETE", fmt.Sprintf("/comments/%d", comment.ID), nil)
	assert.Equal(t, http.StatusNoContent, rw.Code)

	rw = doJSON(t, router, "DELETE", fmt.Sprintf("/comments/%d", comment.ID), nil)
	assert.Equal(t, http.StatusNotFound, rw.Code)
}
