package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Date.IsZero() {
		return errors.New("date cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	if p.Comments == nil {
		p.Comments = []string{}
	}
	if p.LikedBy == nil {
		p.LikedBy = []string{}
	}
}

// AddComment records a comment identifier in the post's comments sequence
func (p *Post) AddComment(commentID string) error {
	if commentID == "" {
		return errors.New("comment id cannot be empty")
	}
	p.Comments = appendID(p.Comments, commentID)
	return nil
}

// RemoveComment pulls a comment identifier from the post's comments
// sequence. Pulling an absent identifier is a no-op.
func (p *Post) RemoveComment(commentID string) {
	p.Comments = removeID(p.Comments, commentID)
}

// Like adds userID to the post's liked_by set. Returns true if the set
// changed, false if the user had already liked the post.
func (p *Post) Like(userID string) bool {
	if containsID(p.LikedBy, userID) {
		return false
	}
	p.LikedBy = append(p.LikedBy, userID)
	return true
}

// Unlike removes userID from the post's liked_by set. Returns true if the
// set changed.
func (p *Post) Unlike(userID string) bool {
	if !containsID(p.LikedBy, userID) {
		return false
	}
	p.LikedBy = removeID(p.LikedBy, userID)
	return true
}
