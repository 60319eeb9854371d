package storage

import (
	"context"
	"io"
	"time"
)

// Service stores movie poster objects in remote object storage.
type Service interface {
	// PutObject uploads the object and returns its s3://bucket/key location.
	PutObject(ctx context.Context, bucket, key, contentType string, body io.Reader) (string, error)
	// ObjectURL returns a time-limited URL for downloading the object.
	ObjectURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
	DeleteObject(ctx context.Context, bucket, key string) error
}
