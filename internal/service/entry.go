package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/lexi/internal/domain"
	"github.com/mmcdole/lexi/internal/form"
)

// EntryService handles listing and editing dictionary entries
type EntryService struct {
	repo    domain.EntryRepository
	history *HistoryService
	logger  *slog.Logger
}

// NewEntryService creates a new entry service. history may be nil.
func NewEntryService(repo domain.EntryRepository, history *HistoryService, logger *slog.Logger) *EntryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntryService{
		repo:    repo,
		history: history,
		logger:  logger,
	}
}

// List returns one page of entries for the query. A word query that finds
// entries is recorded in the lookup history.
func (s *EntryService) List(ctx context.Context, query domain.EntryQuery) (*domain.Page[domain.Entry], error) {
	query = query.Normalize()
	s.logger.Debug("listing entries", "word", query.Word, "letter", query.Letter, "page", query.Page)

	page, err := s.repo.ListEntries(ctx, query)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Warn("list entries failed", "word", query.Word, "letter", query.Letter, "error", err)
		}
		return nil, err
	}

	if query.Word != "" && !page.IsEmpty() {
		s.history.Record(query.Word)
	}
	return page, nil
}

// Get returns a single entry
func (s *EntryService) Get(ctx context.Context, id int64) (*domain.Entry, error) {
	entry, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		s.logger.Warn("get entry failed", "id", id, "error", err)
		return nil, err
	}
	return entry, nil
}

// Apply sends the request a form submission asked for. ActionNone sends
// nothing and succeeds.
func (s *EntryService) Apply(ctx context.Context, action form.Action) error {
	s.logger.Debug("applying form action", "kind", action.Kind.String(), "id", action.EntryID)

	var err error
	switch action.Kind {
	case form.ActionNone:
		return nil
	case form.ActionCreate:
		var created *domain.Entry
		created, err = s.repo.CreateEntry(ctx, action.Input)
		if err == nil {
			s.logger.Info("entry created", "id", created.ID, "word", created.Word)
		}
	case form.ActionReplace:
		err = s.repo.ReplaceEntry(ctx, action.EntryID, action.Input)
	case form.ActionPatchDefinition:
		err = s.repo.PatchDefinition(ctx, action.EntryID, action.Definition)
	default:
		return fmt.Errorf("unknown form action %d", action.Kind)
	}

	if err != nil {
		s.logger.Error("form action failed", "kind", action.Kind.String(), "id", action.EntryID, "error", err)
	}
	return err
}

// Create validates input the way the entry form does and creates the entry.
func (s *EntryService) Create(ctx context.Context, input domain.EntryInput) (*domain.Entry, error) {
	f := form.NewAdd().
		Set(form.FieldWord, input.Word).
		Set(form.FieldWordType, input.WordType).
		Set(form.FieldDefinition, input.Definition)
	f, _, ok := f.Submit()
	if !ok {
		return nil, ValidationError(f)
	}
	return s.repo.CreateEntry(ctx, f.Input())
}

// Edit loads entry id, applies the non-empty changes and sends the request
// the edit form would. It returns the action that was taken.
func (s *EntryService) Edit(ctx context.Context, id int64, changes domain.EntryInput) (form.Action, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return form.Action{}, err
	}

	f := form.NewEdit(*entry)
	if changes.Word != "" {
		f = f.Set(form.FieldWord, changes.Word)
	}
	if changes.WordType != "" {
		f = f.Set(form.FieldWordType, changes.WordType)
	}
	if changes.Definition != "" {
		f = f.Set(form.FieldDefinition, changes.Definition)
	}

	f, action, ok := f.Submit()
	if !ok {
		return action, ValidationError(f)
	}
	return action, s.Apply(ctx, action)
}

// Delete removes an entry
func (s *EntryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteEntry(ctx, id); err != nil {
		s.logger.Error("delete entry failed", "id", id, "error", err)
		return err
	}
	s.logger.Info("entry deleted", "id", id)
	return nil
}

// ValidationError lists the empty fields of a rejected form.
func ValidationError(f form.Form) error {
	var empty []string
	for _, field := range form.Fields {
		if f.FieldError(field) != "" {
			empty = append(empty, strings.ToLower(field.Label()))
		}
	}
	return fmt.Errorf("%s: %s", strings.Join(empty, ", "), form.EmptyFieldMessage)
}
