package ingest

import (
	"context"
	"io"

	"document-hub/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockIngestService struct {
	mock.Mock
}

func NewMockIngestService() *MockIngestService {
	return &MockIngestService{}
}

func (m *MockIngestService) Ingest(ctx context.Context, content io.Reader, originalName, contentType string, sizeBytes int64, uploadedBy string) (*domain.DocumentSummary, error) {
	args := m.Called(ctx, content, originalName, contentType, sizeBytes, uploadedBy)
	return args.Get(0).(*domain.DocumentSummary), args.Error(1)
}
