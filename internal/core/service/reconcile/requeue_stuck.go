package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"document-hub/internal/core/domain"
	"document-hub/internal/metrics"
)

// RequeueStuckPending re-publishes a processing message for every document
// that has sat in pending longer than the stuck threshold. A record only
// stays pending that long when the original enqueue failed (or the message
// was lost); re-publishing is safe because the worker's mutations are
// idempotent.
func (s *reconcileService) RequeueStuckPending(ctx context.Context, now time.Time) error {
	docs, err := s.repo.FindStalled(ctx, domain.DocumentStatusPending, now.Add(-s.stuckAfter))
	if err != nil {
		return fmt.Errorf("find stalled documents: %w", err)
	}

	for _, doc := range docs {
		msg := domain.ProcessDocumentMessage{
			DocumentID:    doc.ID.String(),
			StoredName:    doc.StoredName,
			ContainerName: s.bucketName,
		}
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("encode processing message: %w", err)
		}

		if err := s.publisher.Publish(ctx, data); err != nil {
			s.logger.Error("failed to requeue stuck document",
				"documentID", doc.ID, "error", err)
			continue
		}
		metrics.Deliveries.WithLabelValues("requeued").Inc()
		s.logger.Info("requeued stuck pending document",
			"documentID", doc.ID, "createdAt", doc.CreatedAt)
	}

	return nil
}
