package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"content-hub/internal/domain/entity"
	"content-hub/internal/repository"

	"github.com/lib/pq"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
       (user_id, title, content, author, summary, tags, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		article.UserID, article.Title, article.Content, article.Author,
		article.Summary, pq.Array(article.Tags),
		article.CreatedAt, article.UpdatedAt,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, user_id, title, content, author, summary, tags, created_at, updated_at
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.UserID, &article.Title, &article.Content,
			&article.Author, &article.Summary, pq.Array(&article.Tags),
			&article.CreatedAt, &article.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`
	var existsFlag bool
	if err := repo.db.QueryRowContext(ctx, query, id).Scan(&existsFlag); err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return existsFlag, nil
}

// ListPaginated retrieves articles ordered by created_at DESC.
// Uses LIMIT and OFFSET for efficient pagination.
func (repo *ArticleRepo) ListPaginated(ctx context.Context, skip, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, user_id, title, content, author, summary, tags, created_at, updated_at
FROM articles
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := repo.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.UserID, &article.Title,
			&article.Content, &article.Author, &article.Summary,
			pq.Array(&article.Tags), &article.CreatedAt, &article.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

// Count returns the total number of articles in the database.
func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title      = $1,
       content    = $2,
       author     = $3,
       summary    = $4,
       tags       = $5,
       updated_at = $6
WHERE id = $7`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Content, article.Author,
		article.Summary, pq.Array(article.Tags), article.UpdatedAt, article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}
