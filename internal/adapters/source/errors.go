package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrUnreadable = errors.New("unreadable document")
)
