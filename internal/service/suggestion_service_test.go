package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/service"
)

type fakeSuggester struct {
	suggestion *domain.Suggestion
	err        error

	started chan struct{} // closed when the first call enters
	release chan struct{} // the first call blocks until this closes
	calls   int
}

func (f *fakeSuggester) Suggest(ctx context.Context, description string) (*domain.Suggestion, error) {
	f.calls++
	if f.calls == 1 && f.release != nil {
		if f.started != nil {
			close(f.started)
		}
		<-f.release
	}
	return f.suggestion, f.err
}

func suggestConfig() config.SuggestConfig {
	return config.SuggestConfig{
		Provider:          "gemini",
		APIKey:            "test-key",
		MinDescriptionLen: 3,
	}
}

func TestSuggest_Success(t *testing.T) {
	provider := &fakeSuggester{suggestion: &domain.Suggestion{HSNCode: "73181500", GSTRate: 18, Confidence: 0.9}}
	svc := service.NewSuggestionService(provider, suggestConfig(), zap.NewNop())

	s, err := svc.Suggest(context.Background(), "item-1", "steel bolts")
	require.NoError(t, err)
	assert.Equal(t, "73181500", s.HSNCode)
}

func TestSuggest_NoProvider(t *testing.T) {
	svc := service.NewSuggestionService(nil, suggestConfig(), zap.NewNop())

	_, err := svc.Suggest(context.Background(), "item-1", "steel bolts")
	assert.ErrorIs(t, err, domain.ErrSuggestionUnavailable)
}

func TestSuggest_NoAPIKey(t *testing.T) {
	cfg := suggestConfig()
	cfg.APIKey = ""
	provider := &fakeSuggester{suggestion: &domain.Suggestion{}}
	svc := service.NewSuggestionService(provider, cfg, zap.NewNop())

	_, err := svc.Suggest(context.Background(), "item-1", "steel bolts")
	assert.ErrorIs(t, err, domain.ErrSuggestionUnavailable)
	assert.Zero(t, provider.calls)
}

func TestSuggest_ShortDescription(t *testing.T) {
	provider := &fakeSuggester{suggestion: &domain.Suggestion{}}
	svc := service.NewSuggestionService(provider, suggestConfig(), zap.NewNop())

	_, err := svc.Suggest(context.Background(), "item-1", "ab")
	assert.ErrorIs(t, err, domain.ErrSuggestionUnavailable)
	assert.Zero(t, provider.calls)
}

func TestSuggest_ProviderError(t *testing.T) {
	provider := &fakeSuggester{err: errors.New("api quota exhausted")}
	svc := service.NewSuggestionService(provider, suggestConfig(), zap.NewNop())

	_, err := svc.Suggest(context.Background(), "item-1", "steel bolts")
	assert.ErrorIs(t, err, domain.ErrSuggestionUnavailable)
	assert.Contains(t, err.Error(), "api quota exhausted")
}

func TestSuggest_StaleResultDiscarded(t *testing.T) {
	provider := &fakeSuggester{
		suggestion: &domain.Suggestion{HSNCode: "73181500", GSTRate: 18, Confidence: 0.9},
		started:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	svc := service.NewSuggestionService(provider, suggestConfig(), zap.NewNop())

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Suggest(context.Background(), "item-1", "steel bolts")
		firstDone <- err
	}()

	// Wait for the first request to reach the provider, then supersede it
	<-provider.started
	s, err := svc.Suggest(context.Background(), "item-1", "stainless steel bolts")
	require.NoError(t, err)
	assert.Equal(t, "73181500", s.HSNCode)

	// Unblock the first request; its result must be discarded as stale
	close(provider.release)
	assert.ErrorIs(t, <-firstDone, domain.ErrSuggestionStale)
}

func TestSuggest_IndependentItemsDoNotInterfere(t *testing.T) {
	provider := &fakeSuggester{suggestion: &domain.Suggestion{HSNCode: "73181500", GSTRate: 18, Confidence: 0.9}}
	svc := service.NewSuggestionService(provider, suggestConfig(), zap.NewNop())

	_, err := svc.Suggest(context.Background(), "item-1", "steel bolts")
	require.NoError(t, err)
	_, err = svc.Suggest(context.Background(), "item-2", "copper wire")
	require.NoError(t, err)
	assert.Equal(t, 2, provider.calls)
}
