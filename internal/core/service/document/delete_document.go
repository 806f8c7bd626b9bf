package document

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/google/uuid"
)

// Delete removes the content object, then the thumbnail if any, then the
// metadata record. The record goes last so that a crash mid-deletion leaves
// it behind as the signal of what still needs cleanup; its absence is the
// only fully-deleted state. Deleting an already-deleted document is a
// success.
func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if !found {
		return nil
	}

	if _, err := s.storage.Delete(ctx, doc.StoredName); err != nil {
		return fmt.Errorf("delete content object: %w", err)
	}

	if doc.ThumbnailLocation != nil {
		key, err := objectKeyFromLocation(*doc.ThumbnailLocation)
		if err != nil {
			return fmt.Errorf("resolve thumbnail key: %w", err)
		}
		if _, err := s.storage.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete thumbnail object: %w", err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete metadata record: %w", err)
	}

	s.logger.Info("document deleted", "documentID", id)
	return nil
}

func objectKeyFromLocation(location string) (string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", err
	}
	return path.Base(u.Path), nil
}
