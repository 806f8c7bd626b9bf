package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"document-hub/internal/core/domain"
	"document-hub/internal/core/port"

	"github.com/google/uuid"
)

// SQLQuerier is the subset of *sql.DB used by the repository
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlDocumentRepository struct {
	db SQLQuerier
}

// NewSqlDocumentRepository creates sqlDocumentRepository that implements port.DocumentRepository
func NewSqlDocumentRepository(db SQLQuerier) port.DocumentRepository {
	return &sqlDocumentRepository{
		db: db,
	}
}

const documentColumns = `id, stored_name, original_name, content_type, size_bytes, status,
               content_location, thumbnail_location, extracted_metadata, error_detail,
               uploaded_by, created_at, processed_at`

// Create inserts a new document record
func (s *sqlDocumentRepository) Create(ctx context.Context, doc domain.Document) error {
	query := `INSERT INTO documents (` + documentColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	metadata, err := marshalMetadata(doc.Metadata)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query,
		doc.ID, doc.StoredName, doc.OriginalName, doc.ContentType, doc.SizeBytes, doc.Status,
		doc.ContentLocation, doc.ThumbnailLocation, metadata, doc.ErrorDetail,
		doc.UploadedBy, doc.CreatedAt, doc.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting document: %w", err)
	}
	return nil
}

// Get finds a document by id. Absence is reported through the found flag,
// not as an error.
func (s *sqlDocumentRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Document, bool, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error querying document: %w", err)
	}
	return doc, true, nil
}

// Upsert writes the full record, creating it if absent. The mutable fields
// (status, thumbnail, metadata, error detail, processed_at) win on conflict;
// identity fields are never overwritten.
func (s *sqlDocumentRepository) Upsert(ctx context.Context, doc domain.Document) error {
	query := `INSERT INTO documents (` + documentColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
              ON CONFLICT (id) DO UPDATE SET
                  status = EXCLUDED.status,
                  thumbnail_location = EXCLUDED.thumbnail_location,
                  extracted_metadata = EXCLUDED.extracted_metadata,
                  error_detail = EXCLUDED.error_detail,
                  processed_at = EXCLUDED.processed_at`

	metadata, err := marshalMetadata(doc.Metadata)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query,
		doc.ID, doc.StoredName, doc.OriginalName, doc.ContentType, doc.SizeBytes, doc.Status,
		doc.ContentLocation, doc.ThumbnailLocation, metadata, doc.ErrorDetail,
		doc.UploadedBy, doc.CreatedAt, doc.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("error upserting document: %w", err)
	}
	return nil
}

// Delete removes the record. Deleting an absent id is a success.
func (s *sqlDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM documents WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	return nil
}

// List returns one page ordered by created_at descending plus the total
// count. Pages are 1-based; a page past the end yields an empty slice.
func (s *sqlDocumentRepository) List(ctx context.Context, page, pageSize int) ([]domain.Document, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting documents: %w", err)
	}

	query := `SELECT ` + documentColumns + `
              FROM documents
              ORDER BY created_at DESC
              LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing documents: %w", err)
	}
	defer rows.Close()

	docs, err := collectDocuments(rows)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// ListByStatus returns every document with the given status
func (s *sqlDocumentRepository) ListByStatus(ctx context.Context, status domain.DocumentStatus) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE status = $1`

	rows, err := s.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("error listing documents by status: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

// FindStalled returns documents sitting in the given status since before the
// cutoff, used by the reconciliation sweep.
func (s *sqlDocumentRepository) FindStalled(ctx context.Context, status domain.DocumentStatus, before time.Time) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + `
              FROM documents
              WHERE status = $1 AND created_at < $2`

	rows, err := s.db.QueryContext(ctx, query, status, before)
	if err != nil {
		return nil, fmt.Errorf("error querying stalled documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var (
		doc         domain.Document
		status      string
		thumbnail   sql.NullString
		metadata    []byte
		errorDetail sql.NullString
		processedAt sql.NullTime
	)

	err := row.Scan(
		&doc.ID,
		&doc.StoredName,
		&doc.OriginalName,
		&doc.ContentType,
		&doc.SizeBytes,
		&status,
		&doc.ContentLocation,
		&thumbnail,
		&metadata,
		&errorDetail,
		&doc.UploadedBy,
		&doc.CreatedAt,
		&processedAt,
	)
	if err != nil {
		return nil, err
	}

	doc.Status = domain.DocumentStatus(status)
	if thumbnail.Valid {
		doc.ThumbnailLocation = &thumbnail.String
	}
	if errorDetail.Valid {
		doc.ErrorDetail = &errorDetail.String
	}
	if processedAt.Valid {
		t := processedAt.Time
		doc.ProcessedAt = &t
	}
	if len(metadata) > 0 {
		var m domain.DocumentMetadata
		if err := json.Unmarshal(metadata, &m); err != nil {
			return nil, fmt.Errorf("error decoding extracted metadata: %w", err)
		}
		doc.Metadata = &m
	}

	return &doc, nil
}

func collectDocuments(rows *sql.Rows) ([]domain.Document, error) {
	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}
	return docs, nil
}

func marshalMetadata(m *domain.DocumentMetadata) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("error encoding extracted metadata: %w", err)
	}
	return data, nil
}
