package document

import (
	"log/slog"
	"time"

	"document-hub/internal/core/port"
)

type documentService struct {
	repo          port.DocumentRepository
	storage       port.ObjectStorage
	defaultExpiry time.Duration
	logger        *slog.Logger
}

// NewDocumentService creates the retrieval/deletion coordinator
func NewDocumentService(repo port.DocumentRepository, storage port.ObjectStorage, defaultExpiry time.Duration, logger *slog.Logger) port.DocumentService {
	return &documentService{
		repo:          repo,
		storage:       storage,
		defaultExpiry: defaultExpiry,
		logger:        logger,
	}
}
