// Package interaction provides HTTP handlers for recording and listing
// per-user interaction events (views, likes, shares).
package interaction

import (
	"time"

	"content-hub/internal/domain/entity"
	"content-hub/internal/repository"
)

// ArticleDTO is the denormalized article context attached to an interaction
// record so clients can render lists without extra lookups.
type ArticleDTO struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Author  string   `json:"author,omitempty"`
	Tags    []string `json:"tags"`
	Summary string   `json:"summary"`
}

// DTO represents the JSON structure for an interaction record.
// The owning user is implied by the authenticated request and deliberately
// not included in the payload.
type DTO struct {
	ID              int64       `json:"id"`
	ArticleID       int64       `json:"articleId"`
	InteractionType string      `json:"interactionType"`
	CreatedAt       time.Time   `json:"createdAt"`
	Article         *ArticleDTO `json:"article,omitempty"`
}

// StatsDTO carries aggregate counts over the same filtered set as the page.
type StatsDTO struct {
	TotalViews  int64 `json:"totalViews"`
	TotalLikes  int64 `json:"totalLikes"`
	TotalShares int64 `json:"totalShares"`
}

func toDTO(record *entity.Interaction, article *repository.ArticleView) DTO {
	dto := DTO{
		ID:              record.ID,
		ArticleID:       record.ArticleID,
		InteractionType: string(record.Kind),
		CreatedAt:       record.CreatedAt,
	}
	if article != nil {
		tags := article.Tags
		if tags == nil {
			tags = []string{}
		}
		dto.Article = &ArticleDTO{
			ID:      article.ID,
			Title:   article.Title,
			Author:  article.Author,
			Tags:    tags,
			Summary: article.Summary,
		}
	}
	return dto
}
