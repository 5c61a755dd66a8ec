// Package types contains the read shapes shared between the service layer
// and the HTTP API.
package types

import (
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/model"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/progress"
)

// Record is a training record with its derived metrics inlined. Embedding
// flattens both structs into one JSON object.
type Record struct {
	model.TrainingRecord
	progress.Derived
}

// RecordFilter selects a subset of the stored records. Empty fields match
// everything.
type RecordFilter struct {
	Person  string
	QSLevel string
	Module  string
}

// Matches reports whether r passes the filter.
func (f RecordFilter) Matches(r model.TrainingRecord) bool {
	if f.Person != "" && r.PersonName != f.Person {
		return false
	}
	if f.QSLevel != "" && r.QSLevel != f.QSLevel {
		return false
	}
	if f.Module != "" && r.ModuleID != f.Module {
		return false
	}
	return true
}

// LoadResult acknowledges one loaded document.
type LoadResult struct {
	DocumentID string `json:"document_id"`
	People     int    `json:"people"`
	Records    int    `json:"records"`
}

// PersonSummary is the cohort-overview row for one person. QS1Progress and
// QS2Progress are the overall progress restricted to tiers whose label
// contains QS1 or QS2.
type PersonSummary struct {
	Name string `json:"name"`
	progress.Summary
	QS1Progress float64 `json:"qs1_progress"`
	QS2Progress float64 `json:"qs2_progress"`
}

// TierRecords groups one person's records under a qualification tier.
type TierRecords struct {
	QSLevel string   `json:"qs_level"`
	Records []Record `json:"records"`
}

// PersonDetail is the full view of one person: summary, the metadata snapshot
// of their records, and records grouped by tier in curriculum order.
type PersonDetail struct {
	Name    string                    `json:"name"`
	Summary progress.Summary          `json:"summary"`
	Meta    map[model.MetaKey]string  `json:"meta,omitempty"`
	Tiers   []TierRecords             `json:"tiers"`
}
