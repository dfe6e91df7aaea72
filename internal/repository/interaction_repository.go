package repository

import (
	"context"

	"content-hub/internal/domain/entity"
)

// InteractionFilters contains optional predicates for interaction queries.
// A nil field means "no predicate on this dimension". The same filter value
// must drive the page query, the count and the aggregate so their totals agree.
type InteractionFilters struct {
	Kind      *entity.Kind // Optional: filter by interaction kind
	ArticleID *int64       // Optional: filter by article
}

// ArticleView is the denormalized display projection of an article attached
// to interaction records, so consumers do not need a second round trip.
type ArticleView struct {
	ID      int64
	Title   string
	Author  string
	Tags    []string
	Summary string
}

// InteractionWithArticle pairs an interaction with the display view of the
// article it references. Article is nil when the article has been deleted;
// orphaned interactions are kept (no cascading delete).
type InteractionWithArticle struct {
	Interaction *entity.Interaction
	Article     *ArticleView
}

// KindCounts holds per-kind aggregate counts over a filtered interaction set.
type KindCounts struct {
	Views  int64
	Likes  int64
	Shares int64
}

// Total returns the sum across all kinds. For any filter set this equals the
// CountByUser result for the same filters.
func (c KindCounts) Total() int64 {
	return c.Views + c.Likes + c.Shares
}

type InteractionRepository interface {
	// Insert stores a new interaction and assigns its ID.
	// Returns ErrDuplicateKey when the (user, article, kind) uniqueness
	// constraint rejects the row; the constraint is the correctness backstop
	// for concurrent duplicate submissions.
	Insert(ctx context.Context, interaction *entity.Interaction) error
	// Find retrieves the interaction matching the exact (user, article, kind)
	// triple. Returns (nil, nil) if no such record exists.
	Find(ctx context.Context, userID, articleID int64, kind entity.Kind) (*entity.Interaction, error)
	// ListByUser retrieves the user's interactions matching the filters,
	// ordered by created_at DESC, with skip/limit applied after the sort.
	ListByUser(ctx context.Context, userID int64, filters InteractionFilters, skip, limit int) ([]InteractionWithArticle, error)
	// CountByUser returns the total number of the user's interactions
	// matching the filters, across all pages.
	CountByUser(ctx context.Context, userID int64, filters InteractionFilters) (int64, error)
	// CountByKind returns per-kind counts over the same predicate as
	// ListByUser/CountByUser, evaluated against the full matching set.
	CountByKind(ctx context.Context, userID int64, filters InteractionFilters) (KindCounts, error)
}
