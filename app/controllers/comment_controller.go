package controllers

import (
	"net/http"

	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
	Post    string `json:"post" validate:"required"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Index handles listing all comments
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListComments()
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, comments)
}

// Show handles displaying a single comment
func (cc *CommentController) Show(w http.ResponseWriter, r *http.Request) {
	comment, err := cc.commentService.GetComment(mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, comment)
}

// Create handles creating a new comment authored by the acting user
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	var req createCommentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	comment, err := cc.commentService.CreateComment(identity, req.Post, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, comment)
}

// Update handles updating a comment's content
func (cc *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	var req updateCommentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	comment, err := cc.commentService.UpdateComment(identity, mux.Vars(r)["id"], req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, comment)
}

// Delete handles deleting a comment and cleaning up its back-references
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	comment, err := cc.commentService.DeleteComment(identity, mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, comment)
}

// Like handles adding the acting user to the comment's liked_by set
func (cc *CommentController) Like(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	comment, err := cc.commentService.LikeComment(identity, mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, comment)
}

// Unlike handles removing the acting user from the comment's liked_by set
func (cc *CommentController) Unlike(w http.ResponseWriter, r *http.Request) {
	identity, ok := actingIdentity(w, r)
	if !ok {
		return
	}

	comment, err := cc.commentService.UnlikeComment(identity, mux.Vars(r)["id"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, comment)
}
