package dictapi

import (
	"encoding/json"

	"github.com/mmcdole/lexi/internal/domain"
)

// MapEntry converts an API entry to a domain entry
func MapEntry(e EntryResponse) domain.Entry {
	return domain.Entry{
		ID:         e.ID,
		Word:       e.Word,
		WordType:   e.WordType,
		Definition: e.Definition,
	}
}

// MapEntries converts a slice of API entries
func MapEntries(entries []EntryResponse) []domain.Entry {
	result := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		result = append(result, MapEntry(e))
	}
	return result
}

// MapEntryPage converts an API page of entries to a domain page
func MapEntryPage(p PageResponse[EntryResponse]) *domain.Page[domain.Entry] {
	return &domain.Page[domain.Entry]{
		Content:       MapEntries(p.Content),
		PageNumber:    pageNumber(p.Number, p.Pageable),
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
		First:         p.First,
		Last:          p.Last,
	}
}

// MapEntryInput converts a domain input to a request body
func MapEntryInput(in domain.EntryInput) EntryRequest {
	return EntryRequest{
		Word:       in.Word,
		WordType:   in.WordType,
		Definition: in.Definition,
	}
}

// pageNumber prefers the top-level number and falls back to pageable.pageNumber.
func pageNumber(number *int, pageable json.RawMessage) int {
	if number != nil {
		return *number
	}
	var p Pageable
	if len(pageable) > 0 && json.Unmarshal(pageable, &p) == nil {
		return p.PageNumber
	}
	return 0
}
