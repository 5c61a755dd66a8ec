package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF reads page texts out of a PDF document. The whole document is decoded
// before any page is returned, so a corrupt file yields one error instead of
// a partial record set downstream.
type PDF struct {
	r    io.ReaderAt
	size int64
}

// NewPDF creates a PDF source over an already materialized document.
func NewPDF(r io.ReaderAt, size int64) *PDF {
	return &PDF{r: r, size: size}
}

// Pages implements Source.
func (p *PDF) Pages(ctx context.Context) ([]Page, error) {
	reader, err := pdf.NewReader(p.r, p.size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	total := reader.NumPage()
	pages := make([]Page, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read pdf pages: %w", err)
		}
		pg := reader.Page(i)
		if pg.V.IsNull() {
			continue
		}
		text, err := pg.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrUnreadable, i, err)
		}
		pages = append(pages, Page{Number: i, Lines: strings.Split(text, "\n")})
	}
	return pages, nil
}
