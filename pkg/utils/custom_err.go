package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNoItineraryFound = errors.New("no day-wise itinerary found in text")
	ErrDatabaseError    = errors.New("database error")
	ErrPOISourceError   = errors.New("poi source error")
	ErrUnexpectedAI     = errors.New("unexpected behavior of AI model")
	ErrExportNotConfig  = errors.New("export webhook not configured")
	ErrExportFailed     = errors.New("export webhook failed")
)
