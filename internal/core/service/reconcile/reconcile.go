package reconcile

import (
	"log/slog"
	"time"

	"document-hub/internal/core/port"
)

type reconcileService struct {
	repo        port.DocumentRepository
	storage     port.ObjectStorage
	publisher   port.QueuePublisher
	bucketName  string
	stuckAfter  time.Duration
	orphanGrace time.Duration
	logger      *slog.Logger
}

// NewReconcileService creates the sweep that recovers the two tolerated
// inconsistency windows left by partial ingestion failures.
func NewReconcileService(repo port.DocumentRepository, storage port.ObjectStorage, publisher port.QueuePublisher, bucketName string, stuckAfter, orphanGrace time.Duration, logger *slog.Logger) port.ReconcileService {
	return &reconcileService{
		repo:        repo,
		storage:     storage,
		publisher:   publisher,
		bucketName:  bucketName,
		stuckAfter:  stuckAfter,
		orphanGrace: orphanGrace,
		logger:      logger,
	}
}
