package controllers

import (
	"net/http"

	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// TagController handles HTTP requests for tag listings
type TagController struct {
	statsService *services.StatsService
	postService  *services.PostService
}

// NewTagController creates a new TagController
func NewTagController(statsService *services.StatsService, postService *services.PostService) *TagController {
	return &TagController{
		statsService: statsService,
		postService:  postService,
	}
}

// Index lists every distinct tag with the number of posts carrying it
func (tc *TagController) Index(w http.ResponseWriter, r *http.Request) {
	counts, err := tc.statsService.TagCounts()
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, counts)
}

// Posts lists the posts carrying a given tag, newest first
func (tc *TagController) Posts(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]

	posts, err := tc.postService.ListByTag(tag)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}
