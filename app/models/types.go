package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered account. Posts and Comments hold the
// identifiers of content authored by this user; the documents themselves
// live in their own collections.
type User struct {
	ID        string   `json:"id" validate:"required"`
	Username  string   `json:"username" validate:"required,alphanum"`
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name" validate:"required"`
	Password  string   `json:"-" validate:"required"`
	IsAdmin   bool     `json:"is_admin"`
	Posts     []string `json:"posts"`
	Comments  []string `json:"comments"`
}

// Post represents a blog post. User is the author's identifier, Comments
// the identifiers of comments made on this post, LikedBy the set of users
// who liked it.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	Published bool      `json:"published"`
	User      string    `json:"user" validate:"required"`
	LikedBy   []string  `json:"liked_by"`
	Comments  []string  `json:"comments"`
}

// Comment represents a comment on a blog post. User is the author's
// identifier and Post the identifier of the post it belongs to.
type Comment struct {
	ID      string    `json:"id" validate:"required"`
	Content string    `json:"content" validate:"required"`
	Date    time.Time `json:"date" validate:"required"`
	User    string    `json:"user" validate:"required"`
	Post    string    `json:"post" validate:"required"`
	LikedBy []string  `json:"liked_by"`
}

// containsID reports whether ids holds id.
func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// appendID adds id to ids unless it is already present.
func appendID(ids []string, id string) []string {
	if containsID(ids, id) {
		return ids
	}
	return append(ids, id)
}

// removeID deletes id from ids. Removing an id that is not present is a
// no-op, so cleanup passes can run against already-cleaned documents.
func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
