package services

import (
	"errors"
	"fmt"
	"log"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService performs user reads, allow-listed updates and the full
// delete cascade over posts and comments.
type UserService struct {
	userRepo      repositories.UserRepository
	postRepo      repositories.PostRepository
	commentRepo   repositories.CommentRepository
	adminPasscode string
}

// UserPatch holds the fields a user update may touch. Empty fields are
// left unchanged. Changing the password requires OldPassword; a correct
// AdminPasscode grants the admin flag.
type UserPatch struct {
	Username      string
	FirstName     string
	LastName      string
	OldPassword   string
	Password      string
	AdminPasscode string
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, adminPasscode string) *UserService {
	return &UserService{
		userRepo:      userRepo,
		postRepo:      postRepo,
		commentRepo:   commentRepo,
		adminPasscode: adminPasscode,
	}
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// ListUsers retrieves all users
func (s *UserService) ListUsers() ([]*models.User, error) {
	return s.userRepo.List()
}

// UpdateUser applies an allow-listed patch to the user. Only the user
// themselves or an admin may update it.
func (s *UserService) UpdateUser(actor Identity, id string, patch UserPatch) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, id) {
		return nil, fmt.Errorf("%w: cannot update another user", ErrForbidden)
	}

	if patch.Username != "" && patch.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(patch.Username)
		if err == nil && existing.ID != id {
			return nil, fmt.Errorf("%w: a user with the same username already exists", ErrConflict)
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		user.Username = patch.Username
	}
	if patch.FirstName != "" {
		user.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		user.LastName = patch.LastName
	}

	if patch.Password != "" {
		if len(patch.Password) < 8 {
			return nil, fmt.Errorf("%w: password must have 8 or more characters", ErrValidation)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(patch.OldPassword)); err != nil {
			return nil, fmt.Errorf("%w: incorrect password", ErrUnauthorized)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if patch.AdminPasscode != "" {
		if s.adminPasscode == "" || patch.AdminPasscode != s.adminPasscode {
			return nil, fmt.Errorf("%w: the admin passcode you entered is incorrect", ErrForbidden)
		}
		user.IsAdmin = true
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user and cascades: every post they authored is
// deleted with its comments, every remaining comment they authored is
// deleted, and surviving posts that referenced those comments are cleaned
// up. Only the user themselves or an admin may delete the account.
func (s *UserService) DeleteUser(actor Identity, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, id) {
		return nil, fmt.Errorf("%w: cannot delete another user", ErrForbidden)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return nil, err
	}

	// Posts authored by the deleted user, each with its comment cascade.
	// The author-posts pull is skipped since the author is gone.
	posts, err := s.postRepo.ListByAuthor(id)
	if err != nil {
		return user, err
	}
	for _, post := range posts {
		if err := s.postRepo.Delete(post.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return user, err
		}
		comments, err := s.commentRepo.ListByPost(post.ID)
		if err != nil {
			return user, err
		}
		for _, comment := range comments {
			if err := s.commentRepo.Delete(comment.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return user, err
			}
			if comment.User == id {
				continue
			}
			if err := pullCommentFromUser(s.userRepo, comment.User, comment.ID); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					log.Printf("comment %s removed but author %s no longer resolves", comment.ID, comment.User)
					continue
				}
				return user, err
			}
		}
	}

	// Comments the deleted user made on surviving posts.
	comments, err := s.commentRepo.ListByAuthor(id)
	if err != nil {
		return user, err
	}
	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return user, err
		}
		if err := pullCommentFromPost(s.postRepo, comment.Post, comment.ID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				// The post went away with the cascade above.
				continue
			}
			return user, err
		}
	}

	return user, nil
}
