package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstinvoice/internal/suggest"
)

func TestBuildPrompt(t *testing.T) {
	prompt := suggest.BuildPrompt("stainless steel bolts")
	assert.Contains(t, prompt, `"stainless steel bolts"`)
	assert.Contains(t, prompt, "8-digit HSN code")
	assert.Contains(t, prompt, "confidence score from 0.0 to 1.0")
	assert.Contains(t, prompt, `"hsnCode"`)
	assert.Contains(t, prompt, `"gstRate"`)
	assert.Contains(t, prompt, `"confidence"`)
}

func TestParseSuggestion_Valid(t *testing.T) {
	s, err := suggest.ParseSuggestion([]byte(`{"hsnCode":"73181500","gstRate":18,"confidence":0.92}`))
	require.NoError(t, err)
	assert.Equal(t, "73181500", s.HSNCode)
	assert.InDelta(t, 18.0, s.GSTRate, 1e-9)
	assert.InDelta(t, 0.92, s.Confidence, 1e-9)
}

func TestParseSuggestion_MissingFields(t *testing.T) {
	payloads := []string{
		`{}`,
		`{"hsnCode":"73181500"}`,
		`{"hsnCode":"73181500","gstRate":18}`,
		`{"gstRate":18,"confidence":0.9}`,
	}
	for _, payload := range payloads {
		_, err := suggest.ParseSuggestion([]byte(payload))
		require.Error(t, err, "payload %s should be rejected", payload)
		assert.Contains(t, err.Error(), "missing required fields")
	}
}

func TestParseSuggestion_MalformedJSON(t *testing.T) {
	_, err := suggest.ParseSuggestion([]byte(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed suggestion payload")

	// Type mismatch is an error too
	_, err = suggest.ParseSuggestion([]byte(`{"hsnCode":7318,"gstRate":18,"confidence":0.9}`))
	assert.Error(t, err)
}

func TestParseSuggestion_ZeroValuesAreValid(t *testing.T) {
	s, err := suggest.ParseSuggestion([]byte(`{"hsnCode":"","gstRate":0,"confidence":0}`))
	require.NoError(t, err)
	assert.Zero(t, s.GSTRate)
	assert.Zero(t, s.Confidence)
}
