// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for creating, listing, getting, updating, and deleting articles.
package article

import (
	"time"

	"content-hub/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDTO(art *entity.Article) DTO {
	tags := art.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:        art.ID,
		Title:     art.Title,
		Author:    art.Author,
		Content:   art.Content,
		Summary:   art.Summary,
		Tags:      tags,
		CreatedAt: art.CreatedAt,
		UpdatedAt: art.UpdatedAt,
	}
}

// requestBody is the JSON payload accepted by create and update handlers.
// Update treats absent fields as "leave unchanged".
type requestBody struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Author  *string   `json:"author"`
	Summary *string   `json:"summary"`
	Tags    *[]string `json:"tags"`
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
