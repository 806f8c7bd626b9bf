package postgres_test

import (
	"context"
	"testing"
	"time"

	"document-hub/internal/adapters/repository/postgres"
	"document-hub/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newPendingDocument() domain.Document {
	id := uuid.New()
	return domain.Document{
		ID:              id,
		StoredName:      id.String() + ".pdf",
		OriginalName:    "report.pdf",
		ContentType:     "application/pdf",
		SizeBytes:       2048,
		Status:          domain.DocumentStatusPending,
		ContentLocation: "http://localhost:9000/documents/" + id.String() + ".pdf",
		UploadedBy:      "alice",
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestSqlDocumentRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := postgres.NewSqlDocumentRepository(dbConnection)

	t.Run("Create and Get - Success", func(t *testing.T) {
		// Arrange
		truncate()
		doc := newPendingDocument()

		// Act
		err := repo.Create(ctx, doc)

		// Assert
		require.NoError(t, err)
		stored, found, err := repo.Get(ctx, doc.ID)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, doc.ID, stored.ID)
		require.Equal(t, doc.StoredName, stored.StoredName)
		require.Equal(t, domain.DocumentStatusPending, stored.Status)
		require.Nil(t, stored.Metadata)
		require.Nil(t, stored.ProcessedAt)
	})

	t.Run("Get - Absent id reports not found", func(t *testing.T) {
		// Arrange
		truncate()

		// Act
		doc, found, err := repo.Get(ctx, uuid.New())

		// Assert
		require.NoError(t, err)
		require.False(t, found)
		require.Nil(t, doc)
	})

	t.Run("Upsert - Updates mutable fields only", func(t *testing.T) {
		// Arrange
		truncate()
		doc := newPendingDocument()
		require.NoError(t, repo.Create(ctx, doc))

		pageCount := 12
		processedAt := time.Now().UTC().Truncate(time.Microsecond)
		doc.Status = domain.DocumentStatusCompleted
		doc.Metadata = &domain.DocumentMetadata{
			PageCount:        &pageCount,
			CustomProperties: map[string]string{"type": "pdf"},
		}
		doc.ProcessedAt = &processedAt
		doc.OriginalName = "renamed.pdf" // identity field, must not change

		// Act
		err := repo.Upsert(ctx, doc)

		// Assert
		require.NoError(t, err)
		stored, found, err := repo.Get(ctx, doc.ID)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, domain.DocumentStatusCompleted, stored.Status)
		require.NotNil(t, stored.Metadata)
		require.Equal(t, 12, *stored.Metadata.PageCount)
		require.Equal(t, "pdf", stored.Metadata.CustomProperties["type"])
		require.NotNil(t, stored.ProcessedAt)
		require.Equal(t, "report.pdf", stored.OriginalName)
	})

	t.Run("Upsert - Creates when absent", func(t *testing.T) {
		// Arrange
		truncate()
		doc := newPendingDocument()

		// Act
		err := repo.Upsert(ctx, doc)

		// Assert
		require.NoError(t, err)
		_, found, err := repo.Get(ctx, doc.ID)
		require.NoError(t, err)
		require.True(t, found)
	})

	t.Run("Upsert - Idempotent on repeated terminal writes", func(t *testing.T) {
		// Arrange
		truncate()
		doc := newPendingDocument()
		detail := "corrupt xref table"
		doc.Status = domain.DocumentStatusFailed
		doc.ErrorDetail = &detail
		require.NoError(t, repo.Upsert(ctx, doc))

		// Act
		err := repo.Upsert(ctx, doc)

		// Assert
		require.NoError(t, err)
		stored, found, err := repo.Get(ctx, doc.ID)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, domain.DocumentStatusFailed, stored.Status)
		require.Equal(t, detail, *stored.ErrorDetail)
	})

	t.Run("Delete - Success and idempotent", func(t *testing.T) {
		// Arrange
		truncate()
		doc := newPendingDocument()
		require.NoError(t, repo.Create(ctx, doc))

		// Act
		err := repo.Delete(ctx, doc.ID)

		// Assert
		require.NoError(t, err)
		_, found, err := repo.Get(ctx, doc.ID)
		require.NoError(t, err)
		require.False(t, found)

		// deleting again still succeeds
		require.NoError(t, repo.Delete(ctx, doc.ID))
	})

	t.Run("List - Newest first with total count", func(t *testing.T) {
		// Arrange
		truncate()
		older := newPendingDocument()
		older.CreatedAt = time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Microsecond)
		newer := newPendingDocument()
		require.NoError(t, repo.Create(ctx, older))
		require.NoError(t, repo.Create(ctx, newer))

		// Act
		docs, total, err := repo.List(ctx, 1, 10)

		// Assert
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.Len(t, docs, 2)
		require.Equal(t, newer.ID, docs[0].ID)
		require.Equal(t, older.ID, docs[1].ID)
	})

	t.Run("List - Partial second page", func(t *testing.T) {
		// Arrange
		truncate()
		base := time.Now().UTC().Truncate(time.Microsecond)
		ids := make([]uuid.UUID, 0, 15)
		for i := 0; i < 15; i++ {
			doc := newPendingDocument()
			doc.CreatedAt = base.Add(-time.Duration(i) * time.Minute)
			require.NoError(t, repo.Create(ctx, doc))
			ids = append(ids, doc.ID)
		}

		// Act
		firstPage, firstTotal, err := repo.List(ctx, 1, 10)
		require.NoError(t, err)
		secondPage, secondTotal, err := repo.List(ctx, 2, 10)
		require.NoError(t, err)

		// Assert
		require.Equal(t, 15, firstTotal)
		require.Equal(t, 15, secondTotal)
		require.Len(t, firstPage, 10)
		require.Len(t, secondPage, 5)
		require.Equal(t, ids[0], firstPage[0].ID)
		require.Equal(t, ids[10], secondPage[0].ID)
		require.Equal(t, ids[14], secondPage[4].ID)
	})

	t.Run("List - Page past the end is empty", func(t *testing.T) {
		// Arrange
		truncate()
		require.NoError(t, repo.Create(ctx, newPendingDocument()))

		// Act
		docs, total, err := repo.List(ctx, 5, 10)

		// Assert
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Empty(t, docs)
	})

	t.Run("FindStalled - Only old documents in the status", func(t *testing.T) {
		// Arrange
		truncate()
		stuck := newPendingDocument()
		stuck.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
		fresh := newPendingDocument()
		completed := newPendingDocument()
		completed.CreatedAt = time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
		completed.Status = domain.DocumentStatusCompleted
		require.NoError(t, repo.Create(ctx, stuck))
		require.NoError(t, repo.Create(ctx, fresh))
		require.NoError(t, repo.Create(ctx, completed))

		// Act
		docs, err := repo.FindStalled(ctx, domain.DocumentStatusPending, time.Now().UTC().Add(-30*time.Minute))

		// Assert
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, stuck.ID, docs[0].ID)
	})

	t.Run("ListByStatus - Filters on status", func(t *testing.T) {
		// Arrange
		truncate()
		pending := newPendingDocument()
		failed := newPendingDocument()
		failed.Status = domain.DocumentStatusFailed
		require.NoError(t, repo.Create(ctx, pending))
		require.NoError(t, repo.Create(ctx, failed))

		// Act
		docs, err := repo.ListByStatus(ctx, domain.DocumentStatusFailed)

		// Assert
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, failed.ID, docs[0].ID)
	})
}
