package document

import (
	"log/slog"
	"time"

	"document-hub/internal/core/domain"
	"document-hub/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 document routes
type HandlerV1 struct {
	ingestService   port.IngestService
	documentService port.DocumentService
	maxUploadSize   int64
	logger          *slog.Logger
}

// NewDocumentHandlerV1 creates HandlerV1
func NewDocumentHandlerV1(ingestService port.IngestService, documentService port.DocumentService, maxUploadSize int64, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		ingestService:   ingestService,
		documentService: documentService,
		maxUploadSize:   maxUploadSize,
		logger:          logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.UploadDocumentV1)
	router.Get("/", h.ListDocumentsV1)
	router.Get("/{documentID}", h.GetDocumentV1)
	router.Get("/{documentID}/download", h.DownloadDocumentV1)
	router.Delete("/{documentID}", h.DeleteDocumentV1)

	return router
}

// V1DocumentResponse is the API representation of a document
type V1DocumentResponse struct {
	ID           string                 `json:"id"`
	FileName     string                 `json:"fileName"`
	ContentType  string                 `json:"contentType"`
	FileSize     int64                  `json:"fileSize"`
	Status       string                 `json:"status"`
	ThumbnailURL *string                `json:"thumbnailUrl,omitempty"`
	Metadata     *V1DocumentMetadataDTO `json:"metadata,omitempty"`
	ErrorDetail  *string                `json:"errorDetail,omitempty"`
	UploadedBy   string                 `json:"uploadedBy"`
	CreatedAt    time.Time              `json:"createdAt"`
	ProcessedAt  *time.Time             `json:"processedAt,omitempty"`
}

// V1DocumentMetadataDTO is the API representation of extracted metadata
type V1DocumentMetadataDTO struct {
	PageCount        *int              `json:"pageCount,omitempty"`
	Author           *string           `json:"author,omitempty"`
	Title            *string           `json:"title,omitempty"`
	CustomProperties map[string]string `json:"customProperties,omitempty"`
}

func toV1Document(doc domain.Document) V1DocumentResponse {
	resp := V1DocumentResponse{
		ID:           doc.ID.String(),
		FileName:     doc.OriginalName,
		ContentType:  doc.ContentType,
		FileSize:     doc.SizeBytes,
		Status:       string(doc.Status),
		ThumbnailURL: doc.ThumbnailLocation,
		ErrorDetail:  doc.ErrorDetail,
		UploadedBy:   doc.UploadedBy,
		CreatedAt:    doc.CreatedAt,
		ProcessedAt:  doc.ProcessedAt,
	}
	if doc.Metadata != nil {
		resp.Metadata = &V1DocumentMetadataDTO{
			PageCount:        doc.Metadata.PageCount,
			Author:           doc.Metadata.Author,
			Title:            doc.Metadata.Title,
			CustomProperties: doc.Metadata.CustomProperties,
		}
	}
	return resp
}
