package models

import "errors"

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	if u.Posts == nil {
		u.Posts = []string{}
	}
	if u.Comments == nil {
		u.Comments = []string{}
	}
}

// AddPost records a post identifier in the user's posts sequence
func (u *User) AddPost(postID string) error {
	if postID == "" {
		return errors.New("post id cannot be empty")
	}
	u.Posts = appendID(u.Posts, postID)
	return nil
}

// RemovePost pulls a post identifier from the user's posts sequence.
// Pulling an absent identifier is a no-op.
func (u *User) RemovePost(postID string) {
	u.Posts = removeID(u.Posts, postID)
}

// AddComment records a comment identifier in the user's comments sequence
func (u *User) AddComment(commentID string) error {
	if commentID == "" {
		return errors.New("comment id cannot be empty")
	}
	u.Comments = appendID(u.Comments, commentID)
	return nil
}

// RemoveComment pulls a comment identifier from the user's comments
// sequence. Pulling an absent identifier is a no-op.
func (u *User) RemoveComment(commentID string) {
	u.Comments = removeID(u.Comments, commentID)
}
