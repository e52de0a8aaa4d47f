// Package gemini implements the suggestion provider on Google's Gemini API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gstinvoice/internal/config"
	"gstinvoice/internal/domain"
	"gstinvoice/internal/suggest"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Suggester calls the Gemini generateContent endpoint with a declared
// response schema.
type Suggester struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// New creates a Gemini-backed suggester.
func New(cfg *config.SuggestConfig) *Suggester {
	return newSuggester(cfg, "")
}

// NewWithEndpoint creates a suggester pointing at a custom API endpoint
// (for testing).
func NewWithEndpoint(cfg *config.SuggestConfig, endpoint string) *Suggester {
	return newSuggester(cfg, endpoint)
}

func newSuggester(cfg *config.SuggestConfig, endpoint string) *Suggester {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Suggester{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// responseSchema declares the structured output expected from the model.
var responseSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"hsnCode":    map[string]interface{}{"type": "STRING"},
		"gstRate":    map[string]interface{}{"type": "NUMBER"},
		"confidence": map[string]interface{}{"type": "NUMBER"},
	},
	"required": []string{"hsnCode", "gstRate", "confidence"},
}

func (s *Suggester) Suggest(ctx context.Context, description string) (*domain.Suggestion, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": suggest.BuildPrompt(description)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema":   responseSchema,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody)
}

// geminiResponse models the generateContent response envelope.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func parseResponse(body []byte) (*domain.Suggestion, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from API: no candidates")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from API: no parts")
	}
	return suggest.ParseSuggestion([]byte(resp.Candidates[0].Content.Parts[0].Text))
}
