package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrNoFirmProfile         = errors.New("no firm profile configured")
	ErrValidation            = errors.New("validation failed")
	ErrInvalidStatus         = errors.New("invalid invoice status")
	ErrInvalidSettings       = errors.New("invalid invoice settings")
	ErrUnsupportedLogoType   = errors.New("unsupported logo type")
	ErrLogoTooLarge          = errors.New("logo exceeds maximum allowed size")
	ErrSuggestionUnavailable = errors.New("suggestion unavailable")
	ErrSuggestionStale       = errors.New("suggestion superseded by a newer request")
)
