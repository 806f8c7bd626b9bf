package port

import (
	"context"
	"io"
	"time"

	"document-hub/internal/core/domain"

	"github.com/google/uuid"
)

// DocumentRepository is an interface to define metadata store interactions.
// Get reports absence through the found flag, never through an error.
type DocumentRepository interface {
	Create(ctx context.Context, doc domain.Document) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Document, bool, error)
	Upsert(ctx context.Context, doc domain.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, pageSize int) ([]domain.Document, int, error)
	ListByStatus(ctx context.Context, status domain.DocumentStatus) ([]domain.Document, error)
	FindStalled(ctx context.Context, status domain.DocumentStatus, before time.Time) ([]domain.Document, error)
}

// ObjectStorage is an interface to define object store interactions
type ObjectStorage interface {
	Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) (bool, error)
	PresignedDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, *time.Time, error)
	ListKeys(ctx context.Context, fn func(key string, lastModified time.Time) error) error
}

// QueuePublisher publishes processing messages to the stream
type QueuePublisher interface {
	Publish(ctx context.Context, data []byte) error
	Close() error
}

// EventConsumer is an interface to define a queue consumer (nats, kafka, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}

// MetadataExtractor derives structured metadata from stored content. It may
// be slow and may fail; implementations are expected to be idempotent on the
// source content.
type MetadataExtractor interface {
	Extract(ctx context.Context, storedName, contentType string) (*domain.DocumentMetadata, error)
}

// IngestService is an interface to define the ingestion coordinator
type IngestService interface {
	Ingest(ctx context.Context, content io.Reader, originalName, contentType string, sizeBytes int64, uploadedBy string) (*domain.DocumentSummary, error)
}

// DocumentService is an interface to define retrieval and deletion
type DocumentService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Document, int, error)
	GetDownloadURL(ctx context.Context, id uuid.UUID, expiry time.Duration) (string, *time.Time, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReconcileService recovers the two documented inconsistency windows:
// records stuck at pending and object-store entries with no record.
type ReconcileService interface {
	RequeueStuckPending(ctx context.Context, now time.Time) error
	SweepOrphanedObjects(ctx context.Context, now time.Time) error
}
