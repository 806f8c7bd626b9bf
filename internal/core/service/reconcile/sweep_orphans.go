package reconcile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SweepOrphanedObjects deletes object-store entries that have no metadata
// record and are older than the grace period. The grace period covers the
// window during ingestion where the object legitimately exists before its
// record does.
func (s *reconcileService) SweepOrphanedObjects(ctx context.Context, now time.Time) error {
	err := s.storage.ListKeys(ctx, func(key string, lastModified time.Time) error {
		if now.Sub(lastModified) < s.orphanGrace {
			return nil
		}

		stem := strings.TrimSuffix(key, filepath.Ext(key))
		id, err := uuid.Parse(stem)
		if err != nil {
			// not one of ours, leave it alone
			s.logger.Warn("skipping unrecognized object key", "key", key)
			return nil
		}

		_, found, err := s.repo.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("check record for %s: %w", key, err)
		}
		if found {
			return nil
		}

		existed, err := s.storage.Delete(ctx, key)
		if err != nil {
			return fmt.Errorf("delete orphaned object %s: %w", key, err)
		}
		if existed {
			s.logger.Info("reclaimed orphaned object",
				"key", key, "lastModified", lastModified)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("sweep orphaned objects: %w", err)
	}
	return nil
}
