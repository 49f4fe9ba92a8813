package storage

import (
	"context"
	"errors"
)

// ObjectStorage defines the interface for object storage operations.
type ObjectStorage interface {
	// PutObject stores body under objectKey, replacing any existing object.
	PutObject(ctx context.Context, objectKey string, contentType string, body []byte) error
}

// Error constants for storage layer
var (
	ErrStorageNotConfigured = errors.New("object storage is not configured")
)
