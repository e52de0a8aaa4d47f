package service

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
)

// SuggestionService gates AI HSN/GST suggestion requests. Suggestions are
// purely advisory: every failure mode surfaces as ErrSuggestionUnavailable
// and never blocks invoice creation.
type SuggestionService interface {
	// Suggest classifies a description for the given line item. When a
	// newer request for the same item starts before this one resolves, the
	// older result is discarded with ErrSuggestionStale.
	Suggest(ctx context.Context, itemID, description string) (*domain.Suggestion, error)
}

type suggestionService struct {
	provider port.Suggester
	cfg      config.SuggestConfig
	logger   *zap.Logger

	mu     sync.Mutex
	tokens map[string]uint64 // itemID -> latest request token
	nextID uint64
}

// NewSuggestionService creates a new SuggestionService. A nil provider
// makes every request report unavailable.
func NewSuggestionService(provider port.Suggester, cfg config.SuggestConfig, logger *zap.Logger) SuggestionService {
	return &suggestionService{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		tokens:   make(map[string]uint64),
	}
}

func (s *suggestionService) Suggest(ctx context.Context, itemID, description string) (*domain.Suggestion, error) {
	if s.provider == nil || !s.cfg.Enabled() {
		return nil, domain.ErrSuggestionUnavailable
	}
	if utf8.RuneCountInString(description) < s.cfg.MinDescriptionLen {
		return nil, domain.ErrSuggestionUnavailable
	}

	token := s.begin(itemID)

	suggestion, err := s.provider.Suggest(ctx, description)

	if !s.current(itemID, token) {
		return nil, domain.ErrSuggestionStale
	}
	if err != nil {
		s.logger.Warn("suggestion request failed",
			zap.String("item_id", itemID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrSuggestionUnavailable, err)
	}
	return suggestion, nil
}

// begin issues a fresh token for the item, superseding any in-flight
// request.
func (s *suggestionService) begin(itemID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.tokens[itemID] = s.nextID
	return s.nextID
}

func (s *suggestionService) current(itemID string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[itemID] == token
}
