package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories/mock"
	"inkwell/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentControllerEnv struct {
	router *mux.Router
	author services.Identity
	post   *models.Post
}

func setupCommentController(t *testing.T) *commentControllerEnv {
	t.Helper()
	userRepo := mock.NewUserRepository()
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo)
	controller := NewCommentController(commentService)

	user := &models.User{Username: "alice", FirstName: "Alice", LastName: "Smith", Password: "hashed"}
	require.NoError(t, userRepo.Create(user))
	post := &models.Post{Title: "T", Content: "C", User: user.ID}
	require.NoError(t, postRepo.Create(post))

	router := mux.NewRouter()
	router.HandleFunc("/comments", controller.Index).Methods("GET")
	router.HandleFunc("/comments", controller.Create).Methods("POST")
	router.HandleFunc("/comments/{id}", controller.Show).Methods("GET")
	router.HandleFunc("/comments/{id}", controller.Update).Methods("PATCH", "PUT")
	router.HandleFunc("/comments/{id}", controller.Delete).Methods("DELETE")

	return &commentControllerEnv{
		router: router,
		author: services.Identity{UserID: user.ID},
		post:   post,
	}
}

func (e *commentControllerEnv) do(method, path, body string, identity *services.Identity) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if identity != nil {
		req = middleware.WithIdentity(req, *identity)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestCommentController(t *testing.T) {
	env := setupCommentController(t)

	var comment models.Comment

	t.Run("create", func(t *testing.T) {
		rec := env.do("POST", "/comments", `{"content":"hi","post":"`+env.post.ID+`"}`, &env.author)
		require.Equal(t, http.StatusOK, rec.Code)

		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comment))
		assert.Equal(t, env.author.UserID, comment.User)
		assert.Equal(t, env.post.ID, comment.Post)
	})

	t.Run("create on unknown post", func(t *testing.T) {
		rec := env.do("POST", "/comments", `{"content":"hi","post":"missing"}`, &env.author)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create without content", func(t *testing.T) {
		rec := env.do("POST", "/comments", `{"post":"`+env.post.ID+`"}`, &env.author)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("show", func(t *testing.T) {
		rec := env.do("GET", "/comments/"+comment.ID, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		rec := env.do("PATCH", "/comments/"+comment.ID, `{"content":"edited"}`, &env.author)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated models.Comment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "edited", updated.Content)
	})

	t.Run("delete", func(t *testing.T) {
		rec := env.do("DELETE", "/comments/"+comment.ID, "", &env.author)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do("GET", "/comments/"+comment.ID, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
