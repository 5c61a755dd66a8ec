package source

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Text reads page texts out of a plain-text document. Pages are separated by
// form feeds; lines within a page by newlines, blank lines preserved.
type Text struct {
	r io.Reader
}

// NewText creates a Text source over r.
func NewText(r io.Reader) *Text {
	return &Text{r: r}
}

// Pages implements Source.
func (t *Text) Pages(ctx context.Context) ([]Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read text pages: %w", err)
	}
	data, err := io.ReadAll(t.r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	chunks := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\f")
	pages := make([]Page, 0, len(chunks))
	for i, chunk := range chunks {
		pages = append(pages, Page{Number: i + 1, Lines: strings.Split(chunk, "\n")})
	}
	return pages, nil
}
