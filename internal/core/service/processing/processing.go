package processing

import (
	"log/slog"

	"document-hub/internal/core/port"
)

type processingService struct {
	repo      port.DocumentRepository
	extractor port.MetadataExtractor
	logger    *slog.Logger
}

// NewProcessingService creates the worker-side message handler
func NewProcessingService(repo port.DocumentRepository, extractor port.MetadataExtractor, logger *slog.Logger) port.MessageService {
	return &processingService{
		repo:      repo,
		extractor: extractor,
		logger:    logger,
	}
}
