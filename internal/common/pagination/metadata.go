package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Page       int   `json:"page"`       // Current page number (1-based)
	Limit      int   `json:"limit"`      // Items per page
	TotalCount int64 `json:"totalCount"` // Total number of items across all pages
	TotalPages int   `json:"totalPages"` // Calculated total number of pages; 0 when TotalCount is 0
	HasNext    bool  `json:"hasNext"`    // Whether a later page exists
	HasPrev    bool  `json:"hasPrev"`    // Whether an earlier page exists
}

// BuildMeta constructs pagination metadata for a result set.
//
// TotalPages uses ceiling division and is 0 when totalCount is 0, which makes
// both HasNext and HasPrev false regardless of the requested page.
func BuildMeta(page, limit int, totalCount int64) Metadata {
	totalPages := 0
	if totalCount > 0 {
		totalPages = int((totalCount + int64(limit) - 1) / int64(limit))
	}
	return Metadata{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && totalPages > 0,
	}
}
