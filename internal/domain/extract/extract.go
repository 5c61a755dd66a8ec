// Package extract runs the sequential line-classification pass that turns a
// document's pages into training records. All parse state (current person,
// current tier, accumulated metadata) lives in local variables of a single
// pass; emitted records carry deep-copied snapshots so later lines can never
// retroactively alter them.
package extract

import (
	"context"
	"strings"

	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/adapters/source"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/classify"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/model"
)

// Option applies a configuration option to the Extractor.
type Option func(*Extractor)

// WithMaxLookback bounds the backward scan for a person's name to at most n
// preceding lines. Zero or negative means the scan runs to the start of the
// current page.
func WithMaxLookback(n int) Option {
	return func(e *Extractor) {
		e.maxLookback = n
	}
}

// Extractor converts ordered page texts into ordered training records.
type Extractor struct {
	maxLookback int
}

// New creates an extractor with configuration options.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Report summarizes one extraction pass for logging and metrics.
type Report struct {
	Lines        int
	ByKind       map[classify.Kind]int
	Skipped      int
	PeopleFound  int
	RecordsTotal int
}

// Extract classifies every line of pages in document order and returns the
// emitted records together with a pass report. Malformed input never fails
// the pass; unmatched lines are skipped with no state change.
//
// The parse state is threaded across pages, not reset per page. The backward
// scan for a person's name is bounded to the current page: the anchor phrase
// and the name it refers to always share a page in the source layout.
func (e *Extractor) Extract(ctx context.Context, pages []source.Page) ([]model.TrainingRecord, Report) {
	person := model.UnknownPerson
	tier := model.DefaultTier
	meta := make(map[model.MetaKey]string)

	var records []model.TrainingRecord
	report := Report{ByKind: make(map[classify.Kind]int)}

	for _, page := range pages {
		if ctx.Err() != nil {
			break
		}
		for i, raw := range page.Lines {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			report.Lines++

			res := classify.Classify(line)
			report.ByKind[res.Kind]++

			switch res.Kind {
			case classify.PersonBoundary:
				if name, ok := e.lookBehind(page.Lines, i); ok {
					person = name
					report.PeopleFound++
				}
				tier = model.DefaultTier
				meta = make(map[model.MetaKey]string)

			case classify.Metadata:
				// The whole raw line is the value; a later line for
				// the same key overwrites it for subsequent records.
				meta[res.MetaKey] = line

			case classify.TierHeader:
				tier = res.Tier

			case classify.ModuleRecord:
				records = append(records, newRecord(person, tier, meta, res.Module))

			default:
				report.Skipped++
			}
		}
	}

	report.RecordsTotal = len(records)
	return records, report
}

// lookBehind scans backward from line index i for the nearest non-blank line,
// whose trimmed text is the person's name. The anchor phrase appears after
// the name in the source layout, so a forward scan cannot work.
func (e *Extractor) lookBehind(lines []string, i int) (string, bool) {
	limit := 0
	if e.maxLookback > 0 && i-e.maxLookback > 0 {
		limit = i - e.maxLookback
	}
	for j := i - 1; j >= limit; j-- {
		if candidate := strings.TrimSpace(lines[j]); candidate != "" {
			return candidate, true
		}
	}
	return "", false
}

// newRecord combines the current parse state with a decomposed module line.
// Categories absent from the line keep their zero defaults; the metadata map
// is copied, not referenced.
func newRecord(person, tier string, meta map[model.MetaKey]string, m classify.Module) model.TrainingRecord {
	rec := model.TrainingRecord{
		PersonName: person,
		ModuleID:   m.ID,
		Title:      m.Title,
		Status:     m.Status,
		QSLevel:    tier,
	}
	if h, ok := m.Hours["T"]; ok {
		rec.TIst, rec.TSoll = h.Ist, h.Soll
	}
	if h, ok := m.Hours["P"]; ok {
		rec.PIst, rec.PSoll = h.Ist, h.Soll
	}
	if h, ok := m.Hours["K"]; ok {
		rec.KIst, rec.KSoll = h.Ist, h.Soll
	}
	if len(meta) > 0 {
		rec.Meta = make(map[model.MetaKey]string, len(meta))
		for k, v := range meta {
			rec.Meta[k] = v
		}
	}
	return rec
}
