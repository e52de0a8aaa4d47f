// Package openai implements the suggestion provider on the OpenAI Chat
// Completions API.
package openai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/suggest"
)

// Suggester calls OpenAI chat completions with a JSON response format.
type Suggester struct {
	client *openai.Client
	model  string
}

// New creates an OpenAI-backed suggester.
func New(cfg *config.SuggestConfig) *Suggester {
	return NewWithBaseURL(cfg, "")
}

// NewWithBaseURL creates a suggester against a custom API base URL
// (for testing).
func NewWithBaseURL(cfg *config.SuggestConfig, baseURL string) *Suggester {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout > 0 {
		clientCfg.HTTPClient.Timeout = timeout
	}
	return &Suggester{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (s *Suggester) Suggest(ctx context.Context, description string) (*domain.Suggestion, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You classify goods for Indian GST. Always respond with a single JSON object and nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: suggest.BuildPrompt(description),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("calling openai API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}
	return suggest.ParseSuggestion([]byte(resp.Choices[0].Message.Content))
}
