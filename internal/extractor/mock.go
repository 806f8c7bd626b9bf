package extractor

import (
	"context"

	"document-hub/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockExtractor struct {
	mock.Mock
}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

func (m *MockExtractor) Extract(ctx context.Context, storedName, contentType string) (*domain.DocumentMetadata, error) {
	args := m.Called(ctx, storedName, contentType)
	return args.Get(0).(*domain.DocumentMetadata), args.Error(1)
}
