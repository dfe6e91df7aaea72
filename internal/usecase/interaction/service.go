package interaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"content-hub/internal/common/pagination"
	"content-hub/internal/domain/entity"
	"content-hub/internal/observability/metrics"
	"content-hub/internal/repository"
)

// RecordResult is the outcome of a Record call. IsNew is false when the
// same (user, article, kind) triple was recorded before; the existing
// record is returned unchanged.
type RecordResult struct {
	Interaction *entity.Interaction
	IsNew       bool
}

// ListResult combines one page of interaction records with pagination
// metadata and aggregate counts computed over the same filtered set.
type ListResult struct {
	Data       []repository.InteractionWithArticle
	Pagination pagination.Metadata
	Stats      repository.KindCounts
}

// Service provides interaction recording and query use cases.
type Service struct {
	Repo     repository.InteractionRepository
	Articles repository.ArticleRepository
}

// Record stores an interaction of the given kind, at most once per
// (user, article, kind) triple. Re-recording an existing triple returns the
// original record with IsNew=false and performs no write.
// Returns ErrInvalidArticleID, ErrArticleNotFound, or a ValidationError for
// an unknown kind.
func (s *Service) Record(ctx context.Context, userID, articleID int64, kind entity.Kind) (*RecordResult, error) {
	if !kind.Valid() {
		return nil, &entity.ValidationError{Field: "interactionType", Message: "must be one of view, like, share"}
	}
	if articleID <= 0 {
		return nil, ErrInvalidArticleID
	}

	exists, err := s.Articles.Exists(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("check article exists: %w", err)
	}
	if !exists {
		return nil, ErrArticleNotFound
	}

	existing, err := s.Repo.Find(ctx, userID, articleID, kind)
	if err != nil {
		return nil, fmt.Errorf("find interaction: %w", err)
	}
	if existing != nil {
		return &RecordResult{Interaction: existing, IsNew: false}, nil
	}

	record := &entity.Interaction{
		UserID:    userID,
		ArticleID: articleID,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	if err := s.Repo.Insert(ctx, record); err != nil {
		// Lost the race against a concurrent identical request. The unique
		// index guarantees exactly one row exists, so return that one.
		if errors.Is(err, repository.ErrDuplicateKey) {
			winner, findErr := s.Repo.Find(ctx, userID, articleID, kind)
			if findErr != nil {
				return nil, fmt.Errorf("find interaction after duplicate: %w", findErr)
			}
			if winner == nil {
				return nil, fmt.Errorf("duplicate insert but no existing record for user=%d article=%d kind=%s", userID, articleID, kind)
			}
			return &RecordResult{Interaction: winner, IsNew: false}, nil
		}
		return nil, fmt.Errorf("insert interaction: %w", err)
	}

	metrics.RecordInteraction(string(kind))
	return &RecordResult{Interaction: record, IsNew: true}, nil
}

// List retrieves a page of the user's interactions together with aggregate
// counts per kind. The page, the total count, and the aggregates are all
// computed over the same filtered set, so the stats block of a filtered
// response stays consistent with its pagination metadata.
func (s *Service) List(ctx context.Context, userID int64, filters repository.InteractionFilters, resolved pagination.Resolved) (*ListResult, error) {
	var (
		records []repository.InteractionWithArticle
		total   int64
		stats   repository.KindCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.Repo.ListByUser(gctx, userID, filters, resolved.Skip, resolved.Limit)
		if err != nil {
			return fmt.Errorf("list interactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.CountByUser(gctx, userID, filters)
		if err != nil {
			return fmt.Errorf("count interactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats, err = s.Repo.CountByKind(gctx, userID, filters)
		if err != nil {
			return fmt.Errorf("aggregate interactions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListResult{
		Data:       records,
		Pagination: pagination.BuildMeta(resolved.Page, resolved.Limit, total),
		Stats:      stats,
	}, nil
}
