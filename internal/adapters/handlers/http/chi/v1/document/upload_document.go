package document

import (
	"encoding/json"
	"net/http"
	"time"

	"document-hub/internal/core/domain"
)

// allowedContentTypes is the whitelist of uploadable document types
var allowedContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"image/jpeg":         {},
	"image/png":          {},
	"image/gif":          {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// V1UploadDocumentResponse is the response to a successful upload
type V1UploadDocumentResponse struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// UploadDocumentV1 is the function that handles document upload
func (h *HandlerV1) UploadDocumentV1(w http.ResponseWriter, r *http.Request) {

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, domain.ErrEmptyFile.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size == 0 {
		http.Error(w, domain.ErrEmptyFile.Error(), http.StatusBadRequest)
		return
	}
	if header.Size > h.maxUploadSize {
		http.Error(w, domain.ErrFileSizeTooBig.Error(), http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedContentTypes[contentType]; !ok {
		http.Error(w, domain.ErrInvalidContentType.Error()+": "+contentType, http.StatusBadRequest)
		return
	}

	uploadedBy := r.Header.Get("X-User-Id")
	if uploadedBy == "" {
		uploadedBy = "anonymous"
	}

	summary, err := h.ingestService.Ingest(r.Context(), file, header.Filename, contentType, header.Size, uploadedBy)
	if err != nil {
		h.logger.Error("error ingesting document", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := V1UploadDocumentResponse{
		ID:        summary.ID.String(),
		FileName:  summary.OriginalName,
		Status:    string(summary.Status),
		CreatedAt: summary.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", "/api/v1/documents/"+resp.ID)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
