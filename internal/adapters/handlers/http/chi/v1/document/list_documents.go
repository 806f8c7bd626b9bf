package document

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// V1ListDocumentsResponse is the response to list documents
type V1ListDocumentsResponse struct {
	Documents  []V1DocumentResponse `json:"documents"`
	TotalCount int                  `json:"totalCount"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
}

// ListDocumentsV1 is the function that handles document listing. Page and
// pageSize are clamped here; the store itself accepts any values.
func (h *HandlerV1) ListDocumentsV1(w http.ResponseWriter, r *http.Request) {

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	docs, total, err := h.documentService.List(r.Context(), page, pageSize)
	if err != nil {
		h.logger.Error("error listing documents", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListDocumentsResponse{
		Documents:  make([]V1DocumentResponse, 0, len(docs)),
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, toV1Document(doc))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
