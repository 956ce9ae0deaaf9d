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

type postControllerEnv struct {
	controller *PostController
	router     *mux.Router
	userRepo   *mock.UserRepository
	author     services.Identity
}

func setupPostController(t *testing.T) *postControllerEnv {
	t.Helper()
	userRepo := mock.NewUserRepository()
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	postService := services.NewPostService(postRepo, commentRepo, userRepo)
	controller := NewPostController(postService)

	user := &models.User{Username: "alice", FirstName: "Alice", LastName: "Smith", Password: "hashed"}
	require.NoError(t, userRepo.Create(user))

	router := mux.NewRouter()
	router.HandleFunc("/posts", controller.Create).Methods("POST")
	router.HandleFunc("/posts", controller.Index).Methods("GET")
	router.HandleFunc("/posts/{id}", controller.Show).Methods("GET")
	router.HandleFunc("/posts/{id}", controller.Update).Methods("PATCH", "PUT")
	router.HandleFunc("/posts/{id}", controller.Delete).Methods("DELETE")
	router.HandleFunc("/posts/{id}/like", controller.Like).Methods("POST")

	return &postControllerEnv{
		controller: controller,
		router:     router,
		userRepo:   userRepo,
		author:     services.Identity{UserID: user.ID},
	}
}

func (e *postControllerEnv) do(method, path, body string, identity *services.Identity) *httptest.ResponseRecorder {
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

func TestPostControllerCreate(t *testing.T) {
	env := setupPostController(t)

	t.Run("authorship comes from the verified identity", func(t *testing.T) {
		rec := env.do("POST", "/posts", `{"title":"T","content":"C","published":true,"user":"attacker"}`, &env.author)
		require.Equal(t, http.StatusOK, rec.Code)

		var post models.Post
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
		assert.Equal(t, env.author.UserID, post.User, "the body's user field must be ignored")
		assert.NotEmpty(t, post.ID)
		assert.Empty(t, post.Comments)
	})

	t.Run("missing fields yield field-level errors", func(t *testing.T) {
		rec := env.do("POST", "/posts", `{"published":true}`, &env.author)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Errors, "Title")
		assert.Contains(t, body.Errors, "Content")
	})

	t.Run("no identity is rejected", func(t *testing.T) {
		rec := env.do("POST", "/posts", `{"title":"T","content":"C"}`, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPostControllerReadAndUpdate(t *testing.T) {
	env := setupPostController(t)

	rec := env.do("POST", "/posts", `{"title":"T","content":"C","published":false}`, &env.author)
	require.Equal(t, http.StatusOK, rec.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))

	t.Run("show", func(t *testing.T) {
		rec := env.do("GET", "/posts/"+post.ID, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("show unknown id", func(t *testing.T) {
		rec := env.do("GET", "/posts/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("patch", func(t *testing.T) {
		rec := env.do("PATCH", "/posts/"+post.ID, `{"published":true}`, &env.author)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated models.Post
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.True(t, updated.Published)
		assert.Equal(t, "T", updated.Title)
	})

	t.Run("delete then show", func(t *testing.T) {
		rec := env.do("DELETE", "/posts/"+post.ID, "", &env.author)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do("GET", "/posts/"+post.ID, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPostControllerLike(t *testing.T) {
	env := setupPostController(t)

	rec := env.do("POST", "/posts", `{"title":"T","content":"C"}`, &env.author)
	require.Equal(t, http.StatusOK, rec.Code)
	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))

	rec = env.do("POST", "/posts/"+post.ID+"/like", "", &env.author)
	require.Equal(t, http.StatusOK, rec.Code)

	var liked models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &liked))
	assert.Equal(t, []string{env.author.UserID}, liked.LikedBy)
}
