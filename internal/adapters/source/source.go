// Package source adapts raw documents into ordered page texts for the
// extractor. Implementations either yield the full page set or fail with a
// single descriptive error; partial page sets are never returned.
package source

import "context"

// Page holds the text lines of one document page, in document order, with
// blank lines preserved.
type Page struct {
	Number int
	Lines  []string
}

// Source yields the pages of one document.
type Source interface {
	// Pages returns every page of the document in order, honoring ctx for
	// cancellation. An unreadable document surfaces as an error wrapping
	// ErrUnreadable.
	Pages(ctx context.Context) ([]Page, error)
}
