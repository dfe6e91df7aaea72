package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents raw pagination query parameters from an HTTP request.
// Values are unbounded at this point; Resolve applies defaults and clamping.
type Params struct {
	Page      int  // 1-based page number
	Limit     int  // Items per page
	Offset    int  // Absolute row offset; overrides Page when HasOffset is set
	HasOffset bool // Whether an offset parameter was supplied
}

// Resolved is the normalized, bounded triple used for database queries.
type Resolved struct {
	Page  int // 1-based page number, >= 1
	Limit int // Items per page, within [1, config.MaxLimit]
	Skip  int // Number of rows to skip: (Page - 1) * Limit
}

// ParseQueryParams parses pagination parameters from an HTTP request query string.
// Missing parameters fall through to the configured defaults. Non-numeric
// values are rejected with an error so the handler can return 400; range
// violations are NOT errors here, Resolve clamps them.
//
// Query parameters:
//   - page: 1-based page number
//   - limit: items per page
//   - offset: absolute row offset, overrides page when present
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: page must be an integer")
		}
		params.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: limit must be an integer")
		}
		params.Limit = limit
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: offset must be an integer")
		}
		params.Offset = offset
		params.HasOffset = true
	}

	return params, nil
}

// Resolve normalizes raw parameters into a bounded (page, limit, skip) triple.
//
// Rules:
//   - limit is clamped into [1, config.MaxLimit]
//   - page is floored at 1
//   - a supplied offset overrides page: page = offset/limit + 1, with the
//     offset itself floored at 0
//   - skip = (page - 1) * limit
func (p Params) Resolve(config Config) Resolved {
	limit := p.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > config.MaxLimit {
		limit = config.MaxLimit
	}

	page := p.Page
	if page < 1 {
		page = 1
	}

	if p.HasOffset {
		offset := p.Offset
		if offset < 0 {
			offset = 0
		}
		page = offset/limit + 1
	}

	return Resolved{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}
