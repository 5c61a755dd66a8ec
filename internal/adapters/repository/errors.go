package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	ErrPersonNotFound = errors.New("person not found")
)
