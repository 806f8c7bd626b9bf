package document

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DeleteDocumentV1 is the function that handles document deletion. Deletion
// is idempotent, so deleting an unknown id is still a 204.
func (h *HandlerV1) DeleteDocumentV1(w http.ResponseWriter, r *http.Request) {

	documentID := chi.URLParam(r, "documentID")
	id, parseErr := uuid.Parse(documentID)
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	if err := h.documentService.Delete(r.Context(), id); err != nil {
		h.logger.Error("error deleting document", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
