package article

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"content-hub/internal/common/pagination"
	"content-hub/internal/domain/entity"
	"content-hub/internal/observability/metrics"
	"content-hub/internal/repository"
)

// SummaryProvider generates article summaries. Summarize may fail when the
// AI backend is configured; Fallback never does.
type SummaryProvider interface {
	Summarize(ctx context.Context, content, title string) (string, error)
	Fallback(content string) string
	Available() bool
}

// maxStoredSummaryLength matches the articles.summary column constraint.
const maxStoredSummaryLength = 500

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	UserID  int64
	Title   string
	Content string
	Author  string
	Summary string
	Tags    []string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID      int64
	UserID  int64
	Title   *string
	Content *string
	Author  *string
	Summary *string
	Tags    *[]string
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence
// to the repository and summary generation to the provider.
type Service struct {
	Repo      repository.ArticleRepository
	Summaries SummaryProvider
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

// populateSummary produces the stored summary for content. AI failures are
// logged and substituted with the deterministic extractive result, so the
// returned summary is never empty for non-empty content.
func (s *Service) populateSummary(ctx context.Context, content, title string) string {
	generated, err := s.Summaries.Summarize(ctx, content, title)
	if err != nil {
		slog.WarnContext(ctx, "ai summary failed, using extractive fallback",
			slog.String("error", err.Error()))
		metrics.RecordSummary(metrics.SummaryOutcomeFallback)
		generated = s.Summaries.Fallback(content)
	} else if s.Summaries.Available() {
		metrics.RecordSummary(metrics.SummaryOutcomeAI)
	} else {
		metrics.RecordSummary(metrics.SummaryOutcomeExtractive)
	}

	// Guard the storage constraint; AI output length is a soft limit.
	if runes := []rune(generated); len(runes) > maxStoredSummaryLength {
		generated = string(runes[:maxStoredSummaryLength-3]) + "..."
	}
	return generated
}

// Create creates a new article with the provided input.
// An empty summary is populated from the content via the summary provider.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if err := entity.ValidateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := entity.ValidateContent(in.Content); err != nil {
		return nil, err
	}
	if err := entity.ValidateSummary(in.Summary); err != nil {
		return nil, err
	}

	tags, err := entity.NormalizeTags("tags", in.Tags)
	if err != nil {
		return nil, err
	}

	summaryText := in.Summary
	if summaryText == "" {
		summaryText = s.populateSummary(ctx, in.Content, in.Title)
	}

	now := time.Now()
	art := &entity.Article{
		UserID:    in.UserID,
		Title:     in.Title,
		Content:   in.Content,
		Author:    in.Author,
		Summary:   summaryText,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// ListPaginated retrieves a page of articles, newest first, together with
// pagination metadata derived from the total count.
func (s *Service) ListPaginated(ctx context.Context, resolved pagination.Resolved) (*PaginatedResult, error) {
	total, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.ListPaginated(ctx, resolved.Skip, resolved.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles paginated: %w", err)
	}

	return &PaginatedResult{
		Data:       articles,
		Pagination: pagination.BuildMeta(resolved.Page, resolved.Limit, total),
	}, nil
}

// Update modifies an existing article with the provided input.
// Only non-nil fields in the input will be updated. The summary is
// regenerated when the content changes and no explicit summary is given.
// Returns ErrInvalidArticleID, ErrArticleNotFound, ErrNotOwner, or a
// ValidationError as appropriate.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	if art.UserID != in.UserID {
		return nil, ErrNotOwner
	}

	contentChanged := false

	if in.Title != nil {
		if err := entity.ValidateTitle(*in.Title); err != nil {
			return nil, err
		}
		art.Title = *in.Title
	}
	if in.Content != nil {
		if err := entity.ValidateContent(*in.Content); err != nil {
			return nil, err
		}
		contentChanged = art.Content != *in.Content
		art.Content = *in.Content
	}
	if in.Author != nil {
		art.Author = *in.Author
	}
	if in.Tags != nil {
		tags, err := entity.NormalizeTags("tags", *in.Tags)
		if err != nil {
			return nil, err
		}
		art.Tags = tags
	}

	switch {
	case in.Summary != nil && *in.Summary != "":
		if err := entity.ValidateSummary(*in.Summary); err != nil {
			return nil, err
		}
		art.Summary = *in.Summary
	case contentChanged:
		art.Summary = s.populateSummary(ctx, art.Content, art.Title)
	}

	art.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article by its ID. Owner-only.
// Interactions referencing the article are left in place and filtered at
// read time.
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return ErrArticleNotFound
	}
	if art.UserID != userID {
		return ErrNotOwner
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
