package services

import (
	"errors"
	"fmt"
	"log"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService performs comment mutations together with the
// back-reference adjustments on the owning post and author.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	userRepo    repositories.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment creates a comment by the acting user on the given post and
// records its identifier in the post's and the author's comments
// sequences. Both the post and the author must exist before the comment is
// written; if a dependent write fails afterwards the comment exists but is
// unlinked, which is reported as ErrInconsistent.
func (s *CommentService) CreateComment(actor Identity, postID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: comment must have one or more characters", ErrValidation)
	}

	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(actor.UserID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: content,
		User:    actor.UserID,
		Post:    postID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if err := addCommentToPost(s.postRepo, postID, comment.ID); err != nil {
		log.Printf("comment %s created but post %s not updated: %v", comment.ID, postID, err)
		return comment, fmt.Errorf("%w: comment created but post link not recorded", ErrInconsistent)
	}
	if err := addCommentToUser(s.userRepo, actor.UserID, comment.ID); err != nil {
		log.Printf("comment %s created but author %s not updated: %v", comment.ID, actor.UserID, err)
		return comment, fmt.Errorf("%w: comment created but author link not recorded", ErrInconsistent)
	}

	return comment, nil
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id string) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// ListComments retrieves all comments
func (s *CommentService) ListComments() ([]*models.Comment, error) {
	return s.commentRepo.List()
}

// UpdateComment changes the comment's content. The date, author and post
// references are immutable. Only the author or an admin may update it.
func (s *CommentService) UpdateComment(actor Identity, id, content string) (*models.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: comment must have one or more characters", ErrValidation)
	}

	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, comment.User) {
		return nil, fmt.Errorf("%w: not the author of this comment", ErrForbidden)
	}

	comment.Content = content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment and pulls its identifier from the owning
// post's and the author's comments sequences. A post or author that no
// longer resolves means the store was already inconsistent; the removal
// still stands but the condition is reported as ErrInconsistent.
func (s *CommentService) DeleteComment(actor Identity, id string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, comment.User) {
		return nil, fmt.Errorf("%w: not the author of this comment", ErrForbidden)
	}

	if err := s.commentRepo.Delete(id); err != nil {
		return nil, err
	}

	if err := pullCommentFromPost(s.postRepo, comment.Post, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Printf("comment %s deleted but post %s no longer resolves", id, comment.Post)
			return comment, fmt.Errorf("%w: post of deleted comment not found", ErrInconsistent)
		}
		return comment, err
	}
	if err := pullCommentFromUser(s.userRepo, comment.User, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Printf("comment %s deleted but author %s no longer resolves", id, comment.User)
			return comment, fmt.Errorf("%w: author of deleted comment not found", ErrInconsistent)
		}
		return comment, err
	}

	return comment, nil
}

// LikeComment adds the acting user to the comment's liked_by set. Liking
// twice has the same effect as once.
func (s *CommentService) LikeComment(actor Identity, id string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment.Like(actor.UserID) {
		if err := s.commentRepo.Update(comment); err != nil {
			return nil, err
		}
	}
	return comment, nil
}

// UnlikeComment removes the acting user from the comment's liked_by set.
func (s *CommentService) UnlikeComment(actor Identity, id string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if comment.Unlike(actor.UserID) {
		if err := s.commentRepo.Update(comment); err != nil {
			return nil, err
		}
	}
	return comment, nil
}
