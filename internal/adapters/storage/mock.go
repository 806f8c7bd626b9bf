package storage

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, content, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) PresignedDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, *time.Time, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Get(1).(*time.Time), args.Error(2)
}

func (m *MockStorage) ListKeys(ctx context.Context, fn func(key string, lastModified time.Time) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}
