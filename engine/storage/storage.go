package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

// Client persists rendered pages and extracted parts.
type Client interface {
	SaveBytes(ctx context.Context, bucketName string, objectName string, data []byte) error
}

type gcsClient struct {
	storageClient *storage.Client
}

// NewGCS stores objects in Google Cloud Storage buckets.
func NewGCS(storageClient *storage.Client) Client {
	return &gcsClient{storageClient: storageClient}
}

func (s *gcsClient) SaveBytes(ctx context.Context, bucketName string, objectName string, data []byte) error {
	bucket := s.storageClient.Bucket(bucketName)
	writer := bucket.Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType(objectName)

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write to GCS: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}

	return nil
}

type localClient struct{}

// NewLocal stores objects as files, treating the bucket name as a directory.
func NewLocal() Client {
	return localClient{}
}

func (localClient) SaveBytes(ctx context.Context, bucketName string, objectName string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(bucketName, filepath.FromSlash(objectName))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

type retryClient struct {
	client     Client
	interval   time.Duration
	maxRetries uint64
}

// WithRetry retries failed saves maxRetries times with a constant interval.
func WithRetry(client Client, interval time.Duration, maxRetries uint64) Client {
	return &retryClient{client: client, interval: interval, maxRetries: maxRetries}
}

func (r *retryClient) SaveBytes(ctx context.Context, bucketName string, objectName string, data []byte) error {
	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := r.client.SaveBytes(ctx, bucketName, objectName, data)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"bucket":  bucketName,
				"object":  objectName,
				"attempt": attempt,
			}).WithError(err).Warn("Failed to save object")
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(r.interval), r.maxRetries), ctx))
}

func contentType(objectName string) string {
	switch filepath.Ext(objectName) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
