package services

import (
	"testing"

	"inkwell/app/models"
	"inkwell/app/repositories/mock"

	"github.com/stretchr/testify/require"
)

// testEnv bundles the mock repositories and services sharing them, the way
// the router wires the real ones.
type testEnv struct {
	userRepo    *mock.UserRepository
	postRepo    *mock.PostRepository
	commentRepo *mock.CommentRepository
	users       *UserService
	posts       *PostService
	comments    *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	userRepo := mock.NewUserRepository()
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	return &testEnv{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		users:       NewUserService(userRepo, postRepo, commentRepo, "secret-passcode"),
		posts:       NewPostService(postRepo, commentRepo, userRepo),
		comments:    NewCommentService(commentRepo, postRepo, userRepo),
	}
}

// addUser creates a user directly in the store and returns its identity.
func (e *testEnv) addUser(t *testing.T, username string) Identity {
	t.Helper()
	user := &models.User{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "hashed",
	}
	require.NoError(t, e.userRepo.Create(user))
	return Identity{UserID: user.ID}
}
