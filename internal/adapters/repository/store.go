// Package repository defines the record store interface and errors.
package repository

import (
	"context"

	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/model"
)

// Store holds the extraction snapshot of the most recently loaded document.
// Records are immutable once stored; reads hand out copies so callers can
// filter and sort freely.
type Store interface {
	// Replace atomically swaps the stored snapshot for the given document.
	Replace(ctx context.Context, documentID string, records []model.TrainingRecord)

	// Records returns a copy of the full snapshot in document order.
	Records(ctx context.Context) []model.TrainingRecord

	// ByPerson returns name's records in document order.
	// Returns ErrPersonNotFound if no record belongs to name.
	ByPerson(ctx context.Context, name string) ([]model.TrainingRecord, error)

	// People returns the distinct person names in the snapshot, sorted,
	// including the unknown sentinel when present.
	People(ctx context.Context) []string

	// DocumentID returns the id of the currently loaded document, or false
	// when nothing has been loaded yet.
	DocumentID(ctx context.Context) (string, bool)

	// Count returns the number of stored records.
	Count(ctx context.Context) int
}
