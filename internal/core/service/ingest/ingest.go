package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"document-hub/internal/core/domain"
	"document-hub/internal/core/port"

	"github.com/google/uuid"
)

type ingestService struct {
	repo       port.DocumentRepository
	storage    port.ObjectStorage
	publisher  port.QueuePublisher
	bucketName string
	logger     *slog.Logger
}

// NewIngestService creates the ingestion coordinator
func NewIngestService(repo port.DocumentRepository, storage port.ObjectStorage, publisher port.QueuePublisher, bucketName string, logger *slog.Logger) port.IngestService {
	return &ingestService{
		repo:       repo,
		storage:    storage,
		publisher:  publisher,
		bucketName: bucketName,
		logger:     logger,
	}
}

// Ingest stores the content, creates the pending metadata record and
// enqueues the processing message, in that order. The content must be stored
// before the record claims a location, and the record must exist before the
// worker can dereference it by id. Nothing is retried here; each step's
// failure is returned with the step name so the caller can attribute it.
func (s *ingestService) Ingest(ctx context.Context, content io.Reader, originalName, contentType string, sizeBytes int64, uploadedBy string) (*domain.DocumentSummary, error) {

	id := uuid.New()
	storedName := id.String() + strings.ToLower(filepath.Ext(originalName))

	location, err := s.storage.Put(ctx, storedName, content, sizeBytes, contentType)
	if err != nil {
		// nothing has been created yet, safe for the caller to retry
		return nil, fmt.Errorf("store content: %w", err)
	}

	doc := domain.Document{
		ID:              id,
		StoredName:      storedName,
		OriginalName:    originalName,
		ContentType:     contentType,
		SizeBytes:       sizeBytes,
		Status:          domain.DocumentStatusPending,
		ContentLocation: location,
		UploadedBy:      uploadedBy,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		// the stored object is now orphaned until the reconcile sweep reclaims it
		s.logger.Warn("metadata create failed, object orphaned",
			"documentID", id, "storedName", storedName, "error", err)
		return nil, fmt.Errorf("create metadata record: %w", err)
	}

	msg := domain.ProcessDocumentMessage{
		DocumentID:    id.String(),
		StoredName:    storedName,
		ContainerName: s.bucketName,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode processing message: %w", err)
	}

	if err := s.publisher.Publish(ctx, data); err != nil {
		// the record stays pending until the reconcile sweep requeues it
		s.logger.Warn("enqueue failed, document stuck pending",
			"documentID", id, "error", err)
		return nil, fmt.Errorf("enqueue processing message: %w", err)
	}

	s.logger.Info("document ingested and queued for processing",
		"documentID", id, "originalName", originalName, "sizeBytes", sizeBytes)

	return &domain.DocumentSummary{
		ID:           doc.ID,
		OriginalName: doc.OriginalName,
		Status:       doc.Status,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
