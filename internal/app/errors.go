package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrDocumentTooLarge = errors.New("document too large")
)
