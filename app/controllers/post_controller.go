package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/services"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService  *services.PostService
	imageService *services.ImageService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, imageService *services.ImageService) *PostController {
	return &PostController{
		postService:  postService,
		imageService: imageService,
	}
}

// Index handles listing posts with optional search, tag, published, and
// pagination query parameters
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	opts := services.QueryOptions{
		Search: r.URL.Query().Get("search"),
		Tag:    r.URL.Query().Get("tag"),
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			opts.Page = p
		}
	}
	sizeStr := r.URL.Query().Get("page_size")
	if sizeStr == "" {
		sizeStr = r.URL.Query().Get("pageSize")
	}
	if sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 {
			opts.PageSize = s
		}
	}
	if pubStr := r.URL.Query().Get("published"); pubStr != "" {
		if pub, err := strconv.ParseBool(pubStr); err == nil {
			opts.Published = &pub
		}
	}

	page, err := pc.postService.Query(opts)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, page)
}

// Show handles fetching a single post and records the view
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.ViewPost(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(&req)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Edit handles partial updates to an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.UpdatePost(id, &req)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post along with its comments and image
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		sendServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles attaching a multipart image upload to a post
func (pc *PostController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, "invalid post ID", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		sendError(w, "missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	post, err := pc.imageService.Store(id, file, header)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}
