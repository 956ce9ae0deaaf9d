package routes

import (
	"net/http"

	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services and controllers onto a router
// using the provided Badger DB. Reads and login/registration are public;
// every mutating route requires a verified bearer token.
func SetupRoutes(db *badger.DB, cfg config.Config) *mux.Router {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo, postRepo, commentRepo, cfg.AdminPasscode)
	postService := services.NewPostService(postRepo, commentRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo)

	userController := controllers.NewUserController(userService, authService)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	auth := middleware.Authenticate(authService)
	protect := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	// Users
	users := router.PathPrefix("/users").Subrouter()
	users.HandleFunc("", userController.Index).Methods("GET")
	users.HandleFunc("", userController.Create).Methods("POST")
	users.HandleFunc("/login", userController.Login).Methods("POST")
	users.HandleFunc("/{id}", userController.Show).Methods("GET")
	users.Handle("/{id}", protect(userController.Update)).Methods("PATCH", "PUT")
	users.Handle("/{id}", protect(userController.Delete)).Methods("DELETE")

	// Posts
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.Handle("", protect(postController.Create)).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}/comments", postController.Comments).Methods("GET")
	posts.Handle("/{id}", protect(postController.Update)).Methods("PATCH", "PUT")
	posts.Handle("/{id}", protect(postController.Delete)).Methods("DELETE")
	posts.Handle("/{id}/like", protect(postController.Like)).Methods("POST")
	posts.Handle("/{id}/unlike", protect(postController.Unlike)).Methods("POST")

	// Comments
	comments := router.PathPrefix("/comments").Subrouter()
	comments.HandleFunc("", commentController.Index).Methods("GET")
	comments.Handle("", protect(commentController.Create)).Methods("POST")
	comments.HandleFunc("/{id}", commentController.Show).Methods("GET")
	comments.Handle("/{id}", protect(commentController.Update)).Methods("PATCH", "PUT")
	comments.Handle("/{id}", protect(commentController.Delete)).Methods("DELETE")
	comments.Handle("/{id}/like", protect(commentController.Like)).Methods("POST")
	comments.Handle("/{id}/unlike", protect(commentController.Unlike)).Methods("POST")

	return router
}
