// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// CohortHandler handles cohort-level statistics requests.
type CohortHandler struct {
	deps Dependencies
}

// NewCohortHandler creates a new cohort handler.
func NewCohortHandler(deps Dependencies) *CohortHandler {
	return &CohortHandler{deps: deps}
}

// HandleGetCohort handles GET /cohort requests: total people, per-person
// progress and per-module completion rates.
func (h *CohortHandler) HandleGetCohort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	stats, err := h.deps.Cohort(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HandleGetModules handles GET /modules requests: the per-module completion
// rates only. The rate denominator is the module's attempt count, not any
// per-person module count.
func (h *CohortHandler) HandleGetModules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	stats, err := h.deps.Cohort(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, stats.PerModule)
}
