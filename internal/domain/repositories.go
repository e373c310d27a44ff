package domain

import "context"

// EntryRepository provides access to dictionary entries on the remote API
type EntryRepository interface {
	// ListEntries returns one page of entries for the query.
	// A word query with no match returns an *APIError with status 404 whose
	// Alternatives hold similar words.
	ListEntries(ctx context.Context, query EntryQuery) (*Page[Entry], error)

	// GetEntry returns a single entry
	GetEntry(ctx context.Context, id int64) (*Entry, error)

	// CreateEntry creates a new entry and returns it with its assigned ID
	CreateEntry(ctx context.Context, input EntryInput) (*Entry, error)

	// ReplaceEntry replaces every field of an existing entry
	ReplaceEntry(ctx context.Context, id int64, input EntryInput) error

	// PatchDefinition replaces only the definition of an existing entry
	PatchDefinition(ctx context.Context, id int64, definition string) error

	// DeleteEntry deletes an entry
	DeleteEntry(ctx context.Context, id int64) error
}

// SuggestionRepository provides search-ahead suggestions
type SuggestionRepository interface {
	// Suggest returns words starting with partial, most frequent first
	Suggest(ctx context.Context, partial string) ([]string, error)
}

// HistoryStore persists recently looked-up words.
type HistoryStore interface {
	// Record moves word to the front of the history
	Record(word string) error

	// Recent returns up to limit words, newest first
	Recent(limit int) ([]string, error)

	// Clear removes all history
	Clear() error

	Close() error
}
