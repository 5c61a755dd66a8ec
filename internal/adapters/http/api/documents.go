// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/adapters/source"
	service "github.com/tobst96/ModularengrundlagenausbildungTracker/internal/app"
)

// DocumentsHandler handles document uploads.
type DocumentsHandler struct {
	deps Dependencies
}

// NewDocumentsHandler creates a new documents handler.
func NewDocumentsHandler(deps Dependencies) *DocumentsHandler {
	return &DocumentsHandler{deps: deps}
}

// HandlePostDocument handles POST /documents multipart uploads. The uploaded
// file replaces the current snapshot; an unreadable document leaves the
// previous snapshot untouched and yields 422.
func (h *DocumentsHandler) HandlePostDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", errors.Join(ErrBadRequest, err))
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.deps.LoadDocument(r.Context(), header.Filename, file)
	switch {
	case errors.Is(err, service.ErrDocumentTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "too_large", err)
		return
	case errors.Is(err, source.ErrUnreadable):
		writeError(w, http.StatusUnprocessableEntity, "unreadable_document", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}
