package suggest

import (
	"encoding/json"
	"fmt"

	"gstinvoice/internal/domain"
)

// BuildPrompt returns the classification prompt for a line-item description.
func BuildPrompt(description string) string {
	return fmt.Sprintf(
		`Given the item description %q, provide the most likely 8-digit HSN code, the corresponding GST rate in percentage, and a confidence score from 0.0 to 1.0 for your suggestion. Respond with a JSON object with keys "hsnCode" (string), "gstRate" (number) and "confidence" (number), and nothing else.`,
		description,
	)
}

// response mirrors the declared output schema. Pointer fields let us tell a
// missing key apart from a zero value.
type response struct {
	HSNCode    *string  `json:"hsnCode"`
	GSTRate    *float64 `json:"gstRate"`
	Confidence *float64 `json:"confidence"`
}

// ParseSuggestion decodes and validates a provider's JSON payload. Any
// missing field or type mismatch is an error; callers treat every error as
// "unavailable".
func ParseSuggestion(payload []byte) (*domain.Suggestion, error) {
	var r response
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("malformed suggestion payload: %w", err)
	}
	if r.HSNCode == nil || r.GSTRate == nil || r.Confidence == nil {
		return nil, fmt.Errorf("suggestion payload missing required fields (raw: %s)", truncate(string(payload), 200))
	}
	return &domain.Suggestion{
		HSNCode:    *r.HSNCode,
		GSTRate:    *r.GSTRate,
		Confidence: *r.Confidence,
	}, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
