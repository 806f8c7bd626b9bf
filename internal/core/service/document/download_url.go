package document

import (
	"context"
	"fmt"
	"time"

	"document-hub/internal/core/domain"

	"github.com/google/uuid"
)

// GetDownloadURL resolves the document and returns a time-limited signed URL
// for its content. A non-positive expiry falls back to the configured
// default.
func (s *documentService) GetDownloadURL(ctx context.Context, id uuid.UUID, expiry time.Duration) (string, *time.Time, error) {
	if expiry <= 0 {
		expiry = s.defaultExpiry
	}

	doc, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("load document: %w", err)
	}
	if !found {
		return "", nil, domain.ErrDocumentNotFound
	}

	url, expiresAt, err := s.storage.PresignedDownloadURL(ctx, doc.StoredName, expiry)
	if err != nil {
		return "", nil, fmt.Errorf("sign download url: %w", err)
	}

	return url, expiresAt, nil
}
