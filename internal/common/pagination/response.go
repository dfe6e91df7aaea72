package pagination

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., article or interaction DTOs).
type Response[T any] struct {
	Data       []T      `json:"data"`       // Array of data items for the current page
	Pagination Metadata `json:"pagination"` // Pagination metadata (page, limit, totals)
}

// NewResponse creates a new paginated response with data and metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
