package service

import (
	"context"
	"strings"

	"github.com/mmcdole/lexi/internal/domain"
)

type call struct {
	method string
	id     int64
	input  domain.EntryInput
	def    string
}

type fakeRepo struct {
	entries map[int64]domain.Entry
	page    *domain.Page[domain.Entry]
	err     error
	calls   []call
}

func (f *fakeRepo) ListEntries(ctx context.Context, q domain.EntryQuery) (*domain.Page[domain.Entry], error) {
	f.calls = append(f.calls, call{method: "list"})
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeRepo) GetEntry(ctx context.Context, id int64) (*domain.Entry, error) {
	f.calls = append(f.calls, call{method: "get", id: id})
	e, ok := f.entries[id]
	if !ok {
		return nil, &domain.APIError{Status: 404, Message: "Entry not found"}
	}
	return &e, nil
}

func (f *fakeRepo) CreateEntry(ctx context.Context, input domain.EntryInput) (*domain.Entry, error) {
	f.calls = append(f.calls, call{method: "create", input: input})
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Entry{ID: 99, Word: input.Word, WordType: input.WordType, Definition: input.Definition}, nil
}

func (f *fakeRepo) ReplaceEntry(ctx context.Context, id int64, input domain.EntryInput) error {
	f.calls = append(f.calls, call{method: "replace", id: id, input: input})
	return f.err
}

func (f *fakeRepo) PatchDefinition(ctx context.Context, id int64, definition string) error {
	f.calls = append(f.calls, call{method: "patch", id: id, def: definition})
	return f.err
}

func (f *fakeRepo) DeleteEntry(ctx context.Context, id int64) error {
	f.calls = append(f.calls, call{method: "delete", id: id})
	return f.err
}

func (f *fakeRepo) methods() []string {
	var out []string
	for _, c := range f.calls {
		out = append(out, c.method)
	}
	return out
}

type fakeSuggester struct {
	words    []string
	partials []string
}

func (f *fakeSuggester) Suggest(ctx context.Context, partial string) ([]string, error) {
	f.partials = append(f.partials, partial)
	var out []string
	for _, w := range f.words {
		if strings.HasPrefix(w, partial) {
			out = append(out, w)
		}
	}
	return out, nil
}

// memoryHistory keeps words newest first.
type memoryHistory struct {
	words []string
}

func (m *memoryHistory) Record(word string) error {
	for i, w := range m.words {
		if w == word {
			m.words = append(m.words[:i], m.words[i+1:]...)
			break
		}
	}
	m.words = append([]string{word}, m.words...)
	return nil
}

func (m *memoryHistory) Recent(limit int) ([]string, error) {
	if limit > 0 && len(m.words) > limit {
		return m.words[:limit], nil
	}
	return m.words, nil
}

func (m *memoryHistory) Clear() error {
	m.words = nil
	return nil
}

func (m *memoryHistory) Close() error { return nil }
