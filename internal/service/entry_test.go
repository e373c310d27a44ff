package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/form"
	"github.com/mmcdole/lexi/internal/log"
)

func catPage() *domain.Page[domain.Entry] {
	return &domain.Page[domain.Entry]{
		Content:    []domain.Entry{{ID: 1, Word: "cat", WordType: "n.", Definition: "A small feline."}},
		TotalPages: 1,
		First:      true,
		Last:       true,
	}
}

func TestEntryService_ListRecordsWordLookups(t *testing.T) {
	repo := &fakeRepo{page: catPage()}
	hist := &memoryHistory{}
	svc := NewEntryService(repo, NewHistoryService(hist, log.NullLogger()), log.NullLogger())

	page, err := svc.List(context.Background(), domain.EntryQuery{Word: "cat"})
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)
	assert.Equal(t, []string{"cat"}, hist.words)

	_, err = svc.List(context.Background(), domain.EntryQuery{Letter: "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, hist.words, "letter listings are not recorded")
}

func TestEntryService_ListFailureNotRecorded(t *testing.T) {
	repo := &fakeRepo{err: &domain.APIError{Status: 404, Message: "Word not found"}}
	hist := &memoryHistory{}
	svc := NewEntryService(repo, NewHistoryService(hist, nil), log.NullLogger())

	_, err := svc.List(context.Background(), domain.EntryQuery{Word: "catt"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, hist.words)
}

func TestEntryService_ListWithoutHistory(t *testing.T) {
	svc := NewEntryService(&fakeRepo{page: catPage()}, nil, log.NullLogger())
	_, err := svc.List(context.Background(), domain.EntryQuery{Word: "cat"})
	assert.NoError(t, err)
}

func TestEntryService_Apply(t *testing.T) {
	tests := []struct {
		name   string
		action form.Action
		want   []string
	}{
		{"none sends nothing", form.Action{Kind: form.ActionNone, EntryID: 1}, nil},
		{"create", form.Action{Kind: form.ActionCreate, Input: domain.EntryInput{Word: "a", WordType: "b", Definition: "c"}}, []string{"create"}},
		{"replace", form.Action{Kind: form.ActionReplace, EntryID: 1}, []string{"replace"}},
		{"patch", form.Action{Kind: form.ActionPatchDefinition, EntryID: 1, Definition: "d"}, []string{"patch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewEntryService(repo, nil, log.NullLogger())
			require.NoError(t, svc.Apply(context.Background(), tt.action))
			assert.Equal(t, tt.want, repo.methods())
		})
	}
}

func TestEntryService_ApplyPropagatesErrors(t *testing.T) {
	repo := &fakeRepo{err: domain.ErrServerOffline}
	svc := NewEntryService(repo, nil, log.NullLogger())
	err := svc.Apply(context.Background(), form.Action{Kind: form.ActionReplace, EntryID: 1})
	assert.True(t, errors.Is(err, domain.ErrServerOffline))
}

func TestEntryService_CreateRejectsEmptyFields(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEntryService(repo, nil, log.NullLogger())

	_, err := svc.Create(context.Background(), domain.EntryInput{Word: "cat", Definition: "  "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word type, definition")
	assert.Contains(t, err.Error(), form.EmptyFieldMessage)
	assert.Empty(t, repo.calls)
}

func TestEntryService_Create(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEntryService(repo, nil, log.NullLogger())

	created, err := svc.Create(context.Background(), domain.EntryInput{Word: " cat ", WordType: "n.", Definition: "A feline."})
	require.NoError(t, err)
	assert.Equal(t, int64(99), created.ID)
	require.Len(t, repo.calls, 1)
	assert.Equal(t, "cat", repo.calls[0].input.Word)
}

func TestEntryService_Edit(t *testing.T) {
	entries := map[int64]domain.Entry{1: {ID: 1, Word: "cat", WordType: "n.", Definition: "A feline."}}

	t.Run("definition only patches", func(t *testing.T) {
		repo := &fakeRepo{entries: entries}
		svc := NewEntryService(repo, nil, log.NullLogger())
		action, err := svc.Edit(context.Background(), 1, domain.EntryInput{Definition: "A small feline."})
		require.NoError(t, err)
		assert.Equal(t, form.ActionPatchDefinition, action.Kind)
		assert.Equal(t, []string{"get", "patch"}, repo.methods())
	})

	t.Run("word change replaces", func(t *testing.T) {
		repo := &fakeRepo{entries: entries}
		svc := NewEntryService(repo, nil, log.NullLogger())
		action, err := svc.Edit(context.Background(), 1, domain.EntryInput{Word: "kitten"})
		require.NoError(t, err)
		assert.Equal(t, form.ActionReplace, action.Kind)
		assert.Equal(t, []string{"get", "replace"}, repo.methods())
		assert.Equal(t, "A feline.", repo.calls[1].input.Definition)
	})

	t.Run("no change sends nothing", func(t *testing.T) {
		repo := &fakeRepo{entries: entries}
		svc := NewEntryService(repo, nil, log.NullLogger())
		action, err := svc.Edit(context.Background(), 1, domain.EntryInput{})
		require.NoError(t, err)
		assert.Equal(t, form.ActionNone, action.Kind)
		assert.Equal(t, []string{"get"}, repo.methods())
	})

	t.Run("missing entry", func(t *testing.T) {
		repo := &fakeRepo{entries: entries}
		svc := NewEntryService(repo, nil, log.NullLogger())
		_, err := svc.Edit(context.Background(), 7, domain.EntryInput{Word: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEntryService_Delete(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewEntryService(repo, nil, log.NullLogger())
	require.NoError(t, svc.Delete(context.Background(), 4))
	assert.Equal(t, int64(4), repo.calls[0].id)
}
