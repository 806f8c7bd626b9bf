package document

import (
	"context"
	"fmt"

	"document-hub/internal/core/domain"

	"github.com/google/uuid"
)

func (s *documentService) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if !found {
		return nil, domain.ErrDocumentNotFound
	}
	return doc, nil
}
