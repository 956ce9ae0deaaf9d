package services

import (
	"errors"
	"fmt"
	"log"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService performs post mutations together with every back-reference
// adjustment they require. The store has no multi-document transactions,
// so once the primary write lands the remaining writes are driven to
// completion; a dependent document that cannot be resolved is reported as
// ErrInconsistent, never silently dropped.
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	userRepo    repositories.UserRepository
}

// PostPatch holds the fields a post update may touch. Nil/empty fields are
// left unchanged; the date, author and reference sequences are never
// patchable.
type PostPatch struct {
	Title     string
	Content   string
	Published *bool
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, userRepo repositories.UserRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

// CreatePost creates a post authored by the acting user and records its
// identifier in the author's posts sequence.
func (s *PostService) CreatePost(actor Identity, title, content string, published bool) (*models.Post, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: post title must have one or more characters", ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: post content must have one or more characters", ErrValidation)
	}

	if _, err := s.userRepo.GetByID(actor.UserID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:     title,
		Content:   content,
		Published: published,
		User:      actor.UserID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	if err := addPostToUser(s.userRepo, actor.UserID, post.ID); err != nil {
		log.Printf("post %s created but author %s not updated: %v", post.ID, actor.UserID, err)
		return post, fmt.Errorf("%w: post created but author link not recorded", ErrInconsistent)
	}

	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves all posts
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}

// ListPostComments retrieves the comments belonging to a post
func (s *PostService) ListPostComments(postID string) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(postID)
}

// UpdatePost applies an allow-listed patch to the post. Only the author or
// an admin may update it.
func (s *PostService) UpdatePost(actor Identity, id string, patch PostPatch) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, post.User) {
		return nil, fmt.Errorf("%w: not the author of this post", ErrForbidden)
	}

	if patch.Title != "" {
		post.Title = patch.Title
	}
	if patch.Content != "" {
		post.Content = patch.Content
	}
	if patch.Published != nil {
		post.Published = *patch.Published
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and cascades: every comment on it is deleted
// and pulled from its author's comments sequence, and the post identifier
// is pulled from its author's posts sequence.
func (s *PostService) DeletePost(actor Identity, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, post.User) {
		return nil, fmt.Errorf("%w: not the author of this post", ErrForbidden)
	}

	if err := s.postRepo.Delete(id); err != nil {
		return nil, err
	}

	if err := s.cascadeDeleteComments(id); err != nil {
		return post, err
	}

	if err := pullPostFromUser(s.userRepo, post.User, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Printf("post %s deleted but author %s no longer resolves", id, post.User)
			return post, fmt.Errorf("%w: author of deleted post not found", ErrInconsistent)
		}
		return post, err
	}

	return post, nil
}

// cascadeDeleteComments removes every comment belonging to the post and
// pulls each one from its author's comments sequence. Individual failures
// are logged and do not abort the remaining removals.
func (s *PostService) cascadeDeleteComments(postID string) error {
	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return err
	}

	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		if err := pullCommentFromUser(s.userRepo, comment.User, comment.ID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				// Author already gone; nothing left to clean.
				log.Printf("comment %s removed but author %s no longer resolves", comment.ID, comment.User)
				continue
			}
			return err
		}
	}
	return nil
}

// LikePost adds the acting user to the post's liked_by set. Liking twice
// has the same effect as once.
func (s *PostService) LikePost(actor Identity, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.Like(actor.UserID) {
		if err := s.postRepo.Update(post); err != nil {
			return nil, err
		}
	}
	return post, nil
}

// UnlikePost removes the acting user from the post's liked_by set.
// Unliking a post that was never liked is a no-op.
func (s *PostService) UnlikePost(actor Identity, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.Unlike(actor.UserID) {
		if err := s.postRepo.Update(post); err != nil {
			return nil, err
		}
	}
	return post, nil
}
