package controllers

import (
	"net/http"

	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

type createPostRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Published bool   `json:"published"`
}

type updatePostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, posts)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, post)
}

// Comments handles listing the comments that belong to a post
func (pc *PostController) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := pc.postService.ListPostComments(mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, comments)
}

// Create handles creating a new post authored by the acting user
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	var req createPostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := pc.postService.CreatePost(identity, req.Title, req.Content, req.Published)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, post)
}

// Update handles partial post updates
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	var req updatePostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := pc.postService.UpdatePost(identity, mux.Vars(r)["id"], services.PostPatch{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, post)
}

// Delete handles deleting a post and cascading to its comments
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	post, err := pc.postService.DeletePost(identity, mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, post)
}

// Like handles adding the acting user to the post's liked_by set
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	post, err := pc.postService.LikePost(identity, mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, post)
}

// Unlike handles removing the acting user from the post's liked_by set
func (pc *PostController) Unlike(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	post, err := pc.postService.UnlikePost(identity, mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, post)
}
