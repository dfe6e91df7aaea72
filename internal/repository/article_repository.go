package repository

import (
	"context"

	"content-hub/internal/domain/entity"
)

type ArticleRepository interface {
	// Create inserts a new article and assigns its ID.
	Create(ctx context.Context, article *entity.Article) error
	// Get retrieves an article by ID.
	// Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Exists reports whether an article with the given ID exists.
	// Cheaper than Get when only referential validity matters.
	Exists(ctx context.Context, id int64) (bool, error)
	// ListPaginated retrieves articles ordered by created_at DESC.
	// Parameters:
	//   - skip: Number of rows to skip (calculated from page number)
	//   - limit: Maximum number of rows to return
	ListPaginated(ctx context.Context, skip, limit int) ([]*entity.Article, error)
	// Count returns the total number of articles.
	// Used for calculating pagination metadata.
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
}
