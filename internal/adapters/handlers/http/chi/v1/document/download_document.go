package document

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"document-hub/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1DownloadDocumentResponse is the response to a download URL request
type V1DownloadDocumentResponse struct {
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// DownloadDocumentV1 is the function that handles download URL requests
func (h *HandlerV1) DownloadDocumentV1(w http.ResponseWriter, r *http.Request) {

	documentID := chi.URLParam(r, "documentID")
	id, parseErr := uuid.Parse(documentID)
	if parseErr != nil {
		http.Error(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	var expiry time.Duration
	if minutes, err := strconv.Atoi(r.URL.Query().Get("expiresInMinutes")); err == nil && minutes > 0 {
		expiry = time.Duration(minutes) * time.Minute
	}

	url, expiresAt, err := h.documentService.GetDownloadURL(r.Context(), id, expiry)
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		http.Error(w, "document not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error generating download url", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	case expiresAt == nil:
		h.logger.Error("download url response missing expiry")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	default:
		resp := V1DownloadDocumentResponse{
			DownloadURL: url,
			ExpiresAt:   *expiresAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}
}
