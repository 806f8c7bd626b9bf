package reconcile_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"document-hub/internal/adapters/eventbroker"
	"document-hub/internal/adapters/repository"
	"document-hub/internal/adapters/storage"
	"document-hub/internal/core/domain"
	"document-hub/internal/core/service/reconcile"
	"document-hub/internal/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReconcileService_RequeueStuckPending_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockDocumentRepository()
	mockStorage := storage.NewMockStorage()
	mockPublisher := eventbroker.NewMockPublisher()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := reconcile.NewReconcileService(mockRepo, mockStorage, mockPublisher, "documents", 30*time.Minute, 24*time.Hour, discardLogger)

	now := time.Now().UTC()
	stuck := domain.Document{
		ID:         uuid.New(),
		StoredName: "stuck.pdf",
		Status:     domain.DocumentStatusPending,
		CreatedAt:  now.Add(-time.Hour),
	}

	mockRepo.On("FindStalled", ctx, domain.DocumentStatusPending, now.Add(-30*time.Minute)).
		Return([]domain.Document{stuck}, nil)

	var published []byte
	mockPublisher.On("Publish", ctx, mock.AnythingOfType("[]uint8")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).([]byte)
		}).
		Return(nil)

	requeuedBefore := testutil.ToFloat64(metrics.Deliveries.WithLabelValues("requeued"))

	// Act
	err := service.RequeueStuckPending(ctx, now)

	// Assert
	assert.NoError(t, err)
	var msg domain.ProcessDocumentMessage
	assert.NoError(t, json.Unmarshal(published, &msg))
	assert.Equal(t, stuck.ID.String(), msg.DocumentID)
	assert.Equal(t, "stuck.pdf", msg.StoredName)
	assert.Equal(t, "documents", msg.ContainerName)
	assert.Equal(t, requeuedBefore+1, testutil.ToFloat64(metrics.Deliveries.WithLabelValues("requeued")))
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestReconcileService_RequeueStuckPending_NothingStalled(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockDocumentRepository()
	mockStorage := storage.NewMockStorage()
	mockPublisher := eventbroker.NewMockPublisher()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := reconcile.NewReconcileService(mockRepo, mockStorage, mockPublisher, "documents", 30*time.Minute, 24*time.Hour, discardLogger)

	now := time.Now().UTC()
	mockRepo.On("FindStalled", ctx, domain.DocumentStatusPending, mock.AnythingOfType("time.Time")).
		Return([]domain.Document{}, nil)

	// Act
	err := service.RequeueStuckPending(ctx, now)

	// Assert
	assert.NoError(t, err)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestReconcileService_RequeueStuckPending_PublishErrorContinues(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := repository.NewMockDocumentRepository()
	mockStorage := storage.NewMockStorage()
	mockPublisher := eventbroker.NewMockPublisher()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := reconcile.NewReconcileService(mockRepo, mockStorage, mockPublisher, "documents", 30*time.Minute, 24*time.Hour, discardLogger)

	now := time.Now().UTC()
	docs := []domain.Document{
		{ID: uuid.New(), StoredName: "first.pdf", Status: domain.DocumentStatusPending},
		{ID: uuid.New(), StoredName: "second.pdf", Status: domain.DocumentStatusPending},
	}

	mockRepo.On("FindStalled", ctx, domain.DocumentStatusPending, mock.AnythingOfType("time.Time")).
		Return(docs, nil)
	mockPublisher.On("Publish", ctx, mock.Anything).Return(errors.New("nats unavailable")).Once()
	mockPublisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	// Act
	err := service.RequeueStuckPending(ctx, now)

	// Assert
	assert.NoError(t, err)
	mockPublisher.AssertNumberOfCalls(t, "Publish", 2)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}
