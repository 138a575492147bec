package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T) *mux.Router {
	return SetupRoutes(setupTestDB(t), t.TempDir())
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, req)
	return rw
}

func createPost(t *testing.T, router *mux.Router, title, content string, tags ...string) models.Post {
	t.Helper()

	body := map[string]interface{}{"title": title, "content": content}
	if len(tags) > 0 {
		body["tags"] = tags
	}
	rw := doRequest(t, router, "POST", "/posts", body)
	require.Equal(t, 201, rw.Code, "create post failed: %s", rw.Body.String())

	var post models.Post
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &post))
	return post
}

func createComment(t *testing.T, router *mux.Router, postID int, author, content string) models.Comment {
	t.Helper()

	rw := doRequest(t, router, "POST", fmt.Sprintf("/posts/%d/comments", postID), map[string]interface{}{
		"author": author, "content": content,
	})
	require.Equal(t, 201, rw.Code, "create comment failed: %s", rw.Body.String())

	var comment models.Comment
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &comment))
	return comment
}

func uploadImage(t *testing.T, router *mux.Router, postID int, contentType, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", fmt.Sprintf("/posts/%d/image", postID), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, req)
	return rw
}
