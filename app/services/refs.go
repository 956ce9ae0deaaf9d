package services

import (
	"inkwell/app/repositories"
)

// Back-reference maintenance helpers shared by the services. Each helper
// re-reads the owning document, adjusts its identifier sequence and writes
// it back. Removing an identifier that is already absent is a no-op, so the
// same cleanup can run twice without harm. A missing owning document
// surfaces as repositories.ErrNotFound; the caller decides whether that is
// tolerable (cascades over possibly-deleted documents) or a reportable
// inconsistency (a comment whose post vanished).

func pullCommentFromPost(posts repositories.PostRepository, postID, commentID string) error {
	post, err := posts.GetByID(postID)
	if err != nil {
		return err
	}
	post.RemoveComment(commentID)
	return posts.Update(post)
}

func pullCommentFromUser(users repositories.UserRepository, userID, commentID string) error {
	user, err := users.GetByID(userID)
	if err != nil {
		return err
	}
	user.RemoveComment(commentID)
	return users.Update(user)
}

func pullPostFromUser(users repositories.UserRepository, userID, postID string) error {
	user, err := users.GetByID(userID)
	if err != nil {
		return err
	}
	user.RemovePost(postID)
	return users.Update(user)
}

func addCommentToPost(posts repositories.PostRepository, postID, commentID string) error {
	post, err := posts.GetByID(postID)
	if err != nil {
		return err
	}
	if err := post.AddComment(commentID); err != nil {
		return err
	}
	return posts.Update(post)
}

func addCommentToUser(users repositories.UserRepository, userID, commentID string) error {
	user, err := users.GetByID(userID)
	if err != nil {
		return err
	}
	if err := user.AddComment(commentID); err != nil {
		return err
	}
	return users.Update(user)
}

func addPostToUser(users repositories.UserRepository, userID, postID string) error {
	user, err := users.GetByID(userID)
	if err != nil {
		return err
	}
	if err := user.AddPost(postID); err != nil {
		return err
	}
	return users.Update(user)
}
