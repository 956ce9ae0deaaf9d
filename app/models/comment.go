package models

import (
	"errors"
	"time"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.Date.IsZero() {
		return errors.New("date cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	if c.LikedBy == nil {
		c.LikedBy = []string{}
	}
}

// Like adds userID to the comment's liked_by set. Returns true if the set
// changed, false if the user had already liked the comment.
func (c *Comment) Like(userID string) bool {
	if containsID(c.LikedBy, userID) {
		return false
	}
	c.LikedBy = append(c.LikedBy, userID)
	return true
}

// Unlike removes userID from the comment's liked_by set. Returns true if
// the set changed.
func (c *Comment) Unlike(userID string) bool {
	if !containsID(c.LikedBy, userID) {
		return false
	}
	c.LikedBy = removeID(c.LikedBy, userID)
	return true
}
