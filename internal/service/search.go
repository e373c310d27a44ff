package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mmcdole/lexi/internal/domain"
)

// SearchService provides search-ahead suggestions
type SearchService struct {
	repo   domain.SuggestionRepository
	logger *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(repo domain.SuggestionRepository, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{repo: repo, logger: logger}
}

// Suggest returns completions for partial in the server's order. Blank input
// returns no suggestions without a request.
func (s *SearchService) Suggest(ctx context.Context, partial string) ([]string, error) {
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return nil, nil
	}

	s.logger.Debug("suggesting", "partial", partial)
	words, err := s.repo.Suggest(ctx, partial)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Warn("suggest failed", "partial", partial, "error", err)
		}
		return nil, err
	}
	return words, nil
}
