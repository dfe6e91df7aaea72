package entity

import (
	"fmt"
	"time"
)

// Kind is the closed enumeration of actions a user can take on an article.
type Kind string

// The three interaction kinds. A user may hold at most one interaction record
// per (article, kind) pair.
const (
	KindView  Kind = "view"
	KindLike  Kind = "like"
	KindShare Kind = "share"
)

// ParseKind validates a raw interaction type string against the closed enum.
// Returns a ValidationError for anything outside the three known kinds.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindView, KindLike, KindShare:
		return Kind(s), nil
	default:
		return "", &ValidationError{
			Field:   "interactionType",
			Message: fmt.Sprintf("must be one of %q, %q, %q", KindView, KindLike, KindShare),
		}
	}
}

// Valid reports whether the kind is one of the three known values.
func (k Kind) Valid() bool {
	switch k {
	case KindView, KindLike, KindShare:
		return true
	}
	return false
}

// Interaction records that a user performed an action on an article.
// The (UserID, ArticleID, Kind) triple is unique; records are append-only
// and survive deletion of the referenced article.
type Interaction struct {
	ID        int64
	UserID    int64
	ArticleID int64
	Kind      Kind
	CreatedAt time.Time
}
