package domain

// Page is one page of a paginated listing as returned by the API.
// PageNumber is 0-based.
type Page[T any] struct {
	Content       []T  `json:"content" yaml:"content"`
	PageNumber    int  `json:"pageNumber" yaml:"page_number"`
	TotalPages    int  `json:"totalPages" yaml:"total_pages"`
	TotalElements int  `json:"totalElements" yaml:"total_elements"`
	First         bool `json:"first" yaml:"first"`
	Last          bool `json:"last" yaml:"last"`
}

// IsEmpty reports whether the page has no content.
func (p Page[T]) IsEmpty() bool {
	return len(p.Content) == 0
}
