package document

import (
	"encoding/json"
	"errors"
	"net/http"

	"document-hub/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetDocumentV1 is the function that handles GetDocument
func (h *HandlerV1) GetDocumentV1(w http.ResponseWriter, r *http.Request) {

	documentID := chi.URLParam(r, "documentID")
	id, parseErr := uuid.Parse(documentID)
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	doc, err := h.documentService.Get(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		http.Error(w, "document not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error getting document", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := toV1Document(*doc)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
