package repository

import (
	"context"
	"time"

	"document-hub/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockDocumentRepository struct {
	mock.Mock
}

func NewMockDocumentRepository() *MockDocumentRepository {
	return &MockDocumentRepository{}
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Document, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Document), args.Bool(1), args.Error(2)
}

func (m *MockDocumentRepository) Upsert(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentRepository) List(ctx context.Context, page, pageSize int) ([]domain.Document, int, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Document), args.Int(1), args.Error(2)
}

func (m *MockDocumentRepository) ListByStatus(ctx context.Context, status domain.DocumentStatus) ([]domain.Document, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindStalled(ctx context.Context, status domain.DocumentStatus, before time.Time) ([]domain.Document, error) {
	args := m.Called(ctx, status, before)
	return args.Get(0).([]domain.Document), args.Error(1)
}
