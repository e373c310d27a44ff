package service

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/lexi/internal/domain"
)

// HistoryService remembers words the user looked up. A nil service or a
// service without a store is disabled and remembers nothing.
type HistoryService struct {
	store  domain.HistoryStore
	logger *slog.Logger
}

// NewHistoryService creates a new history service. store may be nil.
func NewHistoryService(store domain.HistoryStore, logger *slog.Logger) *HistoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryService{store: store, logger: logger}
}

func (s *HistoryService) enabled() bool {
	return s != nil && s.store != nil
}

// Record remembers word. Failures are logged, not returned.
func (s *HistoryService) Record(word string) {
	if !s.enabled() {
		return
	}
	if err := s.store.Record(word); err != nil {
		s.logger.Warn("failed to record history", "word", word, "error", err)
	}
}

// Recent returns up to limit remembered words, newest first.
func (s *HistoryService) Recent(limit int) []string {
	if !s.enabled() {
		return nil
	}
	words, err := s.store.Recent(limit)
	if err != nil {
		s.logger.Warn("failed to read history", "error", err)
		return nil
	}
	return words
}

// Find returns remembered words matching query, best match first. Ties keep
// recency order. An empty query returns every word, newest first.
func (s *HistoryService) Find(query string) []string {
	words := s.Recent(0)
	query = strings.TrimSpace(query)
	if query == "" || len(words) == 0 {
		return words
	}

	ranks := fuzzy.RankFindFold(query, words)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	matches := make([]string, len(ranks))
	for i, r := range ranks {
		matches[i] = r.Target
	}
	return matches
}

// Clear forgets every remembered word
func (s *HistoryService) Clear() error {
	if !s.enabled() {
		return nil
	}
	return s.store.Clear()
}

// Close releases the underlying store
func (s *HistoryService) Close() error {
	if !s.enabled() {
		return nil
	}
	return s.store.Close()
}
