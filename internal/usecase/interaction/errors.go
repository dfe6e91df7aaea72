// Package interaction provides use cases for recording and querying per-user
// interaction events (views, likes, shares) against articles.
package interaction

import "errors"

// Sentinel errors for interaction use case operations.
var (
	// ErrArticleNotFound indicates that the target article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
