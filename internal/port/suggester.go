package port

import (
	"context"

	"gstinvoice/internal/domain"
)

// Suggester abstracts an AI provider that classifies a line-item
// description into an HSN code and GST rate with a confidence score.
type Suggester interface {
	Suggest(ctx context.Context, description string) (*domain.Suggestion, error)
}
