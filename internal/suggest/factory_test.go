package suggest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/port"
	"gstinvoice/internal/suggest"
)

type stubSuggester struct{}

func (stubSuggester) Suggest(context.Context, string) (*domain.Suggestion, error) {
	return &domain.Suggestion{HSNCode: "00000000"}, nil
}

func TestNew_RegisteredProvider(t *testing.T) {
	suggest.Register("stub", func(cfg *config.SuggestConfig) (port.Suggester, error) {
		return stubSuggester{}, nil
	})

	s, err := suggest.New(&config.SuggestConfig{Provider: "stub"})
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := suggest.New(&config.SuggestConfig{Provider: "does-not-exist"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown suggestion provider")
}
