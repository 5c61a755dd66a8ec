// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/progress"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// LoadDocument extracts an uploaded document and replaces the stored
	// snapshot with the result.
	LoadDocument(ctx context.Context, filename string, r io.Reader) (types.LoadResult, error)

	// Read operations expose the stored snapshot and its rollups.
	Records(ctx context.Context, filter types.RecordFilter) ([]types.Record, error)
	People(ctx context.Context) ([]types.PersonSummary, error)
	Person(ctx context.Context, name string) (types.PersonDetail, error)
	Cohort(ctx context.Context) (progress.CohortStats, error)

	// GetStats returns current service statistics.
	GetStats() map[string]interface{}
}

// Read shapes returned by the API, mirrored from the domain view types.
type (
	Record        = types.Record
	RecordFilter  = types.RecordFilter
	LoadResult    = types.LoadResult
	PersonSummary = types.PersonSummary
	PersonDetail  = types.PersonDetail
)

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	documentsHandler *DocumentsHandler
	recordsHandler   *RecordsHandler
	peopleHandler    *PeopleHandler
	cohortHandler    *CohortHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(deps),
		documentsHandler: NewDocumentsHandler(deps),
		recordsHandler:   NewRecordsHandler(deps),
		peopleHandler:    NewPeopleHandler(deps),
		cohortHandler:    NewCohortHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/documents", MetricsMiddleware(s.documentsHandler.HandlePostDocument, "documents"))
	mux.HandleFunc("/records", MetricsMiddleware(s.recordsHandler.HandleGetRecords, "records"))
	mux.HandleFunc("/people", MetricsMiddleware(s.peopleHandler.HandleGetPeople, "people"))
	mux.HandleFunc("/people/", MetricsMiddleware(s.peopleHandler.HandleGetPerson, "person"))
	mux.HandleFunc("/cohort", MetricsMiddleware(s.cohortHandler.HandleGetCohort, "cohort"))
	mux.HandleFunc("/modules", MetricsMiddleware(s.cohortHandler.HandleGetModules, "modules"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
