// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// RecordsHandler handles record listing requests.
type RecordsHandler struct {
	deps Dependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps Dependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// HandleGetRecords handles GET /records?person=&qs_level=&module= requests.
// All filter parameters are optional; derived metrics are inlined per record.
func (h *RecordsHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	filter := RecordFilter{
		Person:  q.Get("person"),
		QSLevel: q.Get("qs_level"),
		Module:  q.Get("module"),
	}

	records, err := h.deps.Records(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
