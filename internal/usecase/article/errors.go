// Package article provides use cases for managing articles.
// It implements business logic for creating, updating, deleting, and querying
// articles, including validation, summary population, and ownership checks.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrNotOwner indicates that the acting user does not own the article.
	// Updates and deletes are owner-only operations.
	ErrNotOwner = errors.New("not the article owner")
)
