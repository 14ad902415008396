// Package access holds the pure authorization predicates. A requester is a
// user ID; 0 means anonymous. These functions only answer yes/no — the
// service layer turns a "no" into a refused mutation.
package access

import "microblog/internal/model"

func Authenticated(requesterID uint) bool {
	return requesterID != 0
}

func CanCreatePost(requesterID uint) bool {
	return Authenticated(requesterID)
}

func CanComment(requesterID uint) bool {
	return Authenticated(requesterID)
}

// CanEditPost: only the author may change a post.
func CanEditPost(post *model.Post, requesterID uint) bool {
	return post != nil && Authenticated(requesterID) && post.AuthorID == requesterID
}

// CanDeletePost follows the same ownership rule as editing.
func CanDeletePost(post *model.Post, requesterID uint) bool {
	return CanEditPost(post, requesterID)
}
