package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"document-hub/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Put stores content under key with the declared content type and returns
// the object's location
func (a *Adapter) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error) {
	opts := minio.PutObjectOptions{
		ContentType: contentType,
	}

	_, err := a.client.PutObject(ctx, a.config.BucketName, key, content, size, opts)
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	location := fmt.Sprintf("%s/%s/%s", a.client.EndpointURL(), a.config.BucketName, key)

	a.logger.Info("object stored",
		slog.String("key", key),
		slog.String("bucket", a.config.BucketName))

	return location, nil
}

// Get retrieves an object's content
func (a *Adapter) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	object, err := a.client.GetObject(ctx, a.config.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return object, nil
}

// Delete removes an object. Deleting an absent key is a success; the return
// value reports whether the object existed.
func (a *Adapter) Delete(ctx context.Context, key string) (bool, error) {
	_, err := a.client.StatObject(ctx, a.config.BucketName, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}

	if err := a.client.RemoveObject(ctx, a.config.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return false, fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("key", key),
		slog.String("bucket", a.config.BucketName))

	return true, nil
}

// PresignedDownloadURL generates a time-limited signed URL for downloading an object
func (a *Adapter) PresignedDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, *time.Time, error) {
	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, key, expiry, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate presigned download URL: %w", err)
	}

	expiresAt := time.Now().Add(expiry)

	return presignedURL.String(), &expiresAt, nil
}

// ListKeys walks every object in the bucket, calling fn with the key and its
// last-modified time. Iteration stops on the first error fn returns.
func (a *Adapter) ListKeys(ctx context.Context, fn func(key string, lastModified time.Time) error) error {
	for object := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return fmt.Errorf("failed to list objects: %w", object.Err)
		}
		if err := fn(object.Key, object.LastModified); err != nil {
			return err
		}
	}
	return nil
}
