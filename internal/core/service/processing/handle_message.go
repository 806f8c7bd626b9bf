package processing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"document-hub/internal/core/domain"
	"document-hub/internal/metrics"

	"github.com/google/uuid"
)

// HandleMessage drives the status state machine for one delivery. Deliveries
// are at-least-once: the same document may arrive again after a visibility
// timeout or a lost acknowledgment, so every mutation here is an idempotent
// upsert. A returned error leaves the delivery unacknowledged and the
// stream's redelivery policy decides what happens next.
func (s *processingService) HandleMessage(ctx context.Context, data []byte) error {
	var msg domain.ProcessDocumentMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		// a payload that never parses would redeliver forever, drop it
		s.logger.Error("could not unmarshal processing message, dropping", "error", err)
		metrics.Deliveries.WithLabelValues("dropped").Inc()
		return nil
	}

	id, err := uuid.Parse(msg.DocumentID)
	if err != nil {
		s.logger.Error("invalid document id in processing message, dropping",
			"documentID", msg.DocumentID, "error", err)
		metrics.Deliveries.WithLabelValues("dropped").Inc()
		return nil
	}

	doc, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load document %s: %w", id, err)
	}
	if !found {
		// deleted concurrently, nothing left to process
		s.logger.Warn("document no longer exists, dropping delivery", "documentID", id)
		metrics.Deliveries.WithLabelValues("dropped").Inc()
		return nil
	}

	if doc.Status.Terminal() {
		// redelivery after a lost ack: re-upsert the record unchanged,
		// never error on an already-terminal document
		if err := s.repo.Upsert(ctx, *doc); err != nil {
			return fmt.Errorf("re-upsert terminal document %s: %w", id, err)
		}
		s.logger.Info("document already in terminal state, acknowledging",
			"documentID", id, "status", doc.Status)
		return nil
	}

	if doc.Status.CanTransitionTo(domain.DocumentStatusProcessing) {
		doc.Status = domain.DocumentStatusProcessing
		if err := s.repo.Upsert(ctx, *doc); err != nil {
			return fmt.Errorf("mark document %s processing: %w", id, err)
		}
	}

	start := time.Now()
	extracted, extractErr := s.extractor.Extract(ctx, doc.StoredName, doc.ContentType)
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())

	if extractErr != nil {
		detail := extractErr.Error()
		doc.Status = domain.DocumentStatusFailed
		doc.ErrorDetail = &detail
		doc.Metadata = nil
		if upErr := s.repo.Upsert(ctx, *doc); upErr != nil {
			s.logger.Error("failed to record failed status",
				"documentID", id, "error", upErr)
		}
		metrics.Deliveries.WithLabelValues("failed").Inc()
		// leave the delivery unacknowledged; the queue decides on retry
		return fmt.Errorf("extract metadata for document %s: %w", id, extractErr)
	}

	now := time.Now().UTC()
	doc.Status = domain.DocumentStatusCompleted
	doc.Metadata = extracted
	doc.ProcessedAt = &now
	doc.ErrorDetail = nil
	if err := s.repo.Upsert(ctx, *doc); err != nil {
		return fmt.Errorf("record completed document %s: %w", id, err)
	}

	metrics.Deliveries.WithLabelValues("completed").Inc()
	s.logger.Info("document processed", "documentID", id)
	return nil
}
