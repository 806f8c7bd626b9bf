package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus represents the processing status of a document
type DocumentStatus string

const (
	DocumentStatusPending    DocumentStatus = "pending"
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusCompleted  DocumentStatus = "completed"
	DocumentStatusFailed     DocumentStatus = "failed"
)

// Terminal reports whether the status is final. Terminal documents are never
// transitioned again.
func (s DocumentStatus) Terminal() bool {
	return s == DocumentStatusCompleted || s == DocumentStatusFailed
}

// CanTransitionTo enforces the monotonic status order:
// pending -> processing -> {completed, failed}. Re-entering processing is
// allowed so that a redelivered message can overwrite processing with
// processing.
func (s DocumentStatus) CanTransitionTo(next DocumentStatus) bool {
	switch s {
	case DocumentStatusPending:
		return next == DocumentStatusProcessing
	case DocumentStatusProcessing:
		return next == DocumentStatusProcessing ||
			next == DocumentStatusCompleted ||
			next == DocumentStatusFailed
	default:
		return false
	}
}

// DocumentMetadata is the structured result of the extraction step. Present
// only on completed documents.
type DocumentMetadata struct {
	PageCount        *int              `json:"pageCount,omitempty"`
	Author           *string           `json:"author,omitempty"`
	Title            *string           `json:"title,omitempty"`
	CustomProperties map[string]string `json:"customProperties,omitempty"`
}

// Document represents an uploaded file and its processing state. ID,
// StoredName, OriginalName, ContentType, SizeBytes, UploadedBy and CreatedAt
// are immutable after creation.
type Document struct {
	ID                uuid.UUID
	StoredName        string
	OriginalName      string
	ContentType       string
	SizeBytes         int64
	Status            DocumentStatus
	ContentLocation   string
	ThumbnailLocation *string
	Metadata          *DocumentMetadata
	ErrorDetail       *string
	UploadedBy        string
	CreatedAt         time.Time
	ProcessedAt       *time.Time
}

// DocumentSummary is what ingestion returns to the caller
type DocumentSummary struct {
	ID           uuid.UUID
	OriginalName string
	Status       DocumentStatus
	CreatedAt    time.Time
}
