// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/adapters/repository"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/adapters/source"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/extract"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/model"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/progress"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/types"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/pkg/logger"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/pkg/metrics"
)

const defaultMaxUploadBytes = 32 << 20

// Service implements the API dependencies for the training tracker.
type Service struct {
	store     repository.Store
	extractor *extract.Extractor

	maxUploadBytes int64

	documentsLoaded atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets a custom record store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithMaxUploadBytes caps the size of an uploaded document.
func WithMaxUploadBytes(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

// WithMaxLookback bounds the extractor's backward name scan.
func WithMaxLookback(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.extractor = extract.New(extract.WithMaxLookback(n))
		}
	}
}

// New creates a Service with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		store:          repository.NewMemStore(),
		extractor:      extract.New(),
		maxUploadBytes: defaultMaxUploadBytes,
		logger:         logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadDocument extracts a document and replaces the store snapshot with the
// result. The document is materialized in memory before extraction; an
// unreadable document surfaces as one error wrapping source.ErrUnreadable and
// leaves the previous snapshot in place.
func (s *Service) LoadDocument(ctx context.Context, filename string, r io.Reader) (types.LoadResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxUploadBytes+1))
	if err != nil {
		metrics.RecordDocumentLoadError()
		return types.LoadResult{}, fmt.Errorf("read document: %w", err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		metrics.RecordDocumentLoadError()
		return types.LoadResult{}, fmt.Errorf("%w: larger than %d bytes", ErrDocumentTooLarge, s.maxUploadBytes)
	}

	pages, err := s.newSource(filename, data).Pages(ctx)
	if err != nil {
		metrics.RecordDocumentLoadError()
		return types.LoadResult{}, fmt.Errorf("extract pages: %w", err)
	}

	start := time.Now()
	records, report := s.extractor.Extract(ctx, pages)
	if err := ctx.Err(); err != nil {
		return types.LoadResult{}, fmt.Errorf("extract document: %w", err)
	}

	id := uuid.New().String()
	s.store.Replace(ctx, id, records)
	s.documentsLoaded.Add(1)

	metrics.RecordDocumentLoaded()
	metrics.ObserveExtractionDuration(float64(time.Since(start).Milliseconds()))
	metrics.RecordRecordsExtracted(report.RecordsTotal)
	for kind, n := range report.ByKind {
		metrics.RecordLinesClassified(kind.String(), n)
	}

	people := s.store.People(ctx)
	s.logger.Info(ctx, "document loaded",
		logger.String("document_id", id),
		logger.String("filename", filename),
		logger.Int("pages", len(pages)),
		logger.Int("lines", report.Lines),
		logger.Int("records", report.RecordsTotal),
		logger.Int("people", len(people)),
		logger.Int("skipped_lines", report.Skipped),
	)

	return types.LoadResult{
		DocumentID: id,
		People:     len(people),
		Records:    report.RecordsTotal,
	}, nil
}

// newSource picks the page source for a document by file extension, falling
// back to a magic-byte sniff so extension-less PDF uploads still decode.
func (s *Service) newSource(filename string, data []byte) source.Source {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") || bytes.HasPrefix(data, []byte("%PDF")) {
		return source.NewPDF(bytes.NewReader(data), int64(len(data)))
	}
	return source.NewText(bytes.NewReader(data))
}

// Records returns the stored records passing the filter, in document order,
// with derived metrics inlined.
func (s *Service) Records(ctx context.Context, filter types.RecordFilter) ([]types.Record, error) {
	stored := s.store.Records(ctx)
	out := make([]types.Record, 0, len(stored))
	for _, r := range stored {
		if filter.Matches(r) {
			out = append(out, types.Record{TrainingRecord: r, Derived: progress.Derive(r)})
		}
	}
	return out, nil
}

// People returns per-person summaries sorted by name. Records owned by the
// unknown-person sentinel are excluded.
func (s *Service) People(ctx context.Context) ([]types.PersonSummary, error) {
	summaries := make([]types.PersonSummary, 0)
	for _, name := range s.store.People(ctx) {
		if name == model.UnknownPerson {
			continue
		}
		records, err := s.store.ByPerson(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("load person records: %w", err)
		}
		summaries = append(summaries, types.PersonSummary{
			Name:        name,
			Summary:     progress.Summarize(records),
			QS1Progress: tierProgress(records, "QS1"),
			QS2Progress: tierProgress(records, "QS2"),
		})
	}
	return summaries, nil
}

// tierProgress is the module-count progress restricted to tiers whose label
// contains the given code.
func tierProgress(records []model.TrainingRecord, code string) float64 {
	subset := make([]model.TrainingRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(r.QSLevel, code) {
			subset = append(subset, r)
		}
	}
	return progress.Summarize(subset).OverallProgress
}

// tierPriority orders qualification tiers the way the curriculum does.
// Unknown tiers sort last.
func tierPriority(tier string) int {
	code, _, _ := strings.Cut(tier, " - ")
	switch code {
	case "QS1":
		return 0
	case "QS2":
		return 1
	case "QS3":
		return 2
	case "Ergänzungsmodule":
		return 3
	default:
		return 99
	}
}

// Person returns one person's summary, metadata and records grouped by tier.
// Returns repository.ErrPersonNotFound for unknown names.
func (s *Service) Person(ctx context.Context, name string) (types.PersonDetail, error) {
	records, err := s.store.ByPerson(ctx, name)
	if err != nil {
		return types.PersonDetail{}, fmt.Errorf("load person records: %w", err)
	}

	detail := types.PersonDetail{
		Name:    name,
		Summary: progress.Summarize(records),
	}
	if len(records) > 0 {
		detail.Meta = records[0].CloneMeta()
	}

	byTier := make(map[string][]types.Record)
	var tiers []string
	for _, r := range records {
		if _, ok := byTier[r.QSLevel]; !ok {
			tiers = append(tiers, r.QSLevel)
		}
		byTier[r.QSLevel] = append(byTier[r.QSLevel], types.Record{
			TrainingRecord: r,
			Derived:        progress.Derive(r),
		})
	}
	sort.SliceStable(tiers, func(i, j int) bool {
		pi, pj := tierPriority(tiers[i]), tierPriority(tiers[j])
		if pi != pj {
			return pi < pj
		}
		return tiers[i] < tiers[j]
	})
	for _, tier := range tiers {
		detail.Tiers = append(detail.Tiers, types.TierRecords{QSLevel: tier, Records: byTier[tier]})
	}

	return detail, nil
}

// Cohort rolls the whole snapshot up across persons and modules. Records
// owned by the unknown-person sentinel are excluded before aggregation.
func (s *Service) Cohort(ctx context.Context) (progress.CohortStats, error) {
	stored := s.store.Records(ctx)
	known := make([]model.TrainingRecord, 0, len(stored))
	for _, r := range stored {
		if r.PersonName != model.UnknownPerson {
			known = append(known, r)
		}
	}
	return progress.Cohort(known), nil
}

// GetStats returns current service statistics.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	stats := map[string]interface{}{
		"records":         s.store.Count(ctx),
		"people":          len(s.store.People(ctx)),
		"documentsLoaded": s.documentsLoaded.Load(),
	}
	if id, ok := s.store.DocumentID(ctx); ok {
		stats["documentID"] = id
	}
	return stats
}
