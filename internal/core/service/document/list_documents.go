package document

import (
	"context"
	"fmt"

	"document-hub/internal/core/domain"
)

// List returns one page of documents ordered by creation time descending,
// plus the total count. Page clamping is the caller's concern; out-of-range
// pages yield an empty slice.
func (s *documentService) List(ctx context.Context, page, pageSize int) ([]domain.Document, int, error) {
	docs, total, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list documents: %w", err)
	}
	return docs, total, nil
}
