package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"content-hub/internal/domain/entity"
	"content-hub/internal/repository"

	"github.com/lib/pq"
)

type InteractionRepo struct {
	db *sql.DB
}

func NewInteractionRepo(db *sql.DB) repository.InteractionRepository {
	return &InteractionRepo{db: db}
}

// Insert stores a new interaction. A unique-constraint violation on the
// (user_id, article_id, kind) index is reported as repository.ErrDuplicateKey
// so the caller can fall back to the find-existing path.
func (repo *InteractionRepo) Insert(ctx context.Context, interaction *entity.Interaction) error {
	const query = `
INSERT INTO interactions (user_id, article_id, kind, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		interaction.UserID, interaction.ArticleID,
		string(interaction.Kind), interaction.CreatedAt,
	).Scan(&interaction.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("Insert: %w", repository.ErrDuplicateKey)
	}
	if err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	return nil
}

func (repo *InteractionRepo) Find(ctx context.Context, userID, articleID int64, kind entity.Kind) (*entity.Interaction, error) {
	const query = `
SELECT id, user_id, article_id, kind, created_at
FROM interactions
WHERE user_id = $1 AND article_id = $2 AND kind = $3
LIMIT 1`
	var interaction entity.Interaction
	var kindStr string
	err := repo.db.QueryRowContext(ctx, query, userID, articleID, string(kind)).
		Scan(&interaction.ID, &interaction.UserID, &interaction.ArticleID,
			&kindStr, &interaction.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}
	interaction.Kind = entity.Kind(kindStr)
	return &interaction, nil
}

// buildWhereClause translates the user scope plus optional filters into a
// WHERE clause. Positional parameters start at $1; the returned args line up
// with the placeholders. "Absent" filter fields produce no predicate.
func buildWhereClause(userID int64, filters repository.InteractionFilters, alias string) (string, []any) {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}

	conditions := []string{fmt.Sprintf("%suser_id = $1", prefix)}
	args := []any{userID}

	if filters.Kind != nil {
		args = append(args, string(*filters.Kind))
		conditions = append(conditions, fmt.Sprintf("%skind = $%d", prefix, len(args)))
	}
	if filters.ArticleID != nil {
		args = append(args, *filters.ArticleID)
		conditions = append(conditions, fmt.Sprintf("%sarticle_id = $%d", prefix, len(args)))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// ListByUser retrieves a page of the user's interactions, newest first.
// Articles are LEFT JOINed: a deleted article yields NULL display columns and
// the record is returned without an article view.
func (repo *InteractionRepo) ListByUser(ctx context.Context, userID int64, filters repository.InteractionFilters, skip, limit int) ([]repository.InteractionWithArticle, error) {
	whereClause, args := buildWhereClause(userID, filters, "i")
	paramIndex := len(args) + 1
	args = append(args, limit, skip)

	query := fmt.Sprintf(`
SELECT i.id, i.user_id, i.article_id, i.kind, i.created_at,
       a.id, a.title, a.author, a.tags, a.summary
FROM interactions i
LEFT JOIN articles a ON i.article_id = a.id
%s
ORDER BY i.created_at DESC
LIMIT $%d OFFSET $%d`, whereClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.InteractionWithArticle, 0, limit)
	for rows.Next() {
		var interaction entity.Interaction
		var kindStr string
		var artID sql.NullInt64
		var artTitle, artAuthor, artSummary sql.NullString
		var artTags []string

		if err := rows.Scan(&interaction.ID, &interaction.UserID, &interaction.ArticleID,
			&kindStr, &interaction.CreatedAt,
			&artID, &artTitle, &artAuthor, pq.Array(&artTags), &artSummary); err != nil {
			return nil, fmt.Errorf("ListByUser: Scan: %w", err)
		}
		interaction.Kind = entity.Kind(kindStr)

		record := repository.InteractionWithArticle{Interaction: &interaction}
		if artID.Valid {
			record.Article = &repository.ArticleView{
				ID:      artID.Int64,
				Title:   artTitle.String,
				Author:  artAuthor.String,
				Tags:    artTags,
				Summary: artSummary.String,
			}
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

// CountByUser returns the size of the full matching set for the same
// predicate used by ListByUser.
func (repo *InteractionRepo) CountByUser(ctx context.Context, userID int64, filters repository.InteractionFilters) (int64, error) {
	whereClause, args := buildWhereClause(userID, filters, "")
	query := "SELECT COUNT(*) FROM interactions " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByUser: %w", err)
	}
	return count, nil
}

// CountByKind groups the full matching set by kind. Kinds with no records are
// reported as zero.
func (repo *InteractionRepo) CountByKind(ctx context.Context, userID int64, filters repository.InteractionFilters) (repository.KindCounts, error) {
	whereClause, args := buildWhereClause(userID, filters, "")
	query := fmt.Sprintf(`
SELECT kind, COUNT(*)
FROM interactions
%s
GROUP BY kind`, whereClause)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return repository.KindCounts{}, fmt.Errorf("CountByKind: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts repository.KindCounts
	for rows.Next() {
		var kind string
		var count int64
		if err := rows.Scan(&kind, &count); err != nil {
			return repository.KindCounts{}, fmt.Errorf("CountByKind: Scan: %w", err)
		}
		switch entity.Kind(kind) {
		case entity.KindView:
			counts.Views = count
		case entity.KindLike:
			counts.Likes = count
		case entity.KindShare:
			counts.Shares = count
		}
	}
	return counts, rows.Err()
}
