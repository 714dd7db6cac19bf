package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage holds the places uploaded images are written to and read back from:
// a local directory (default) or an S3-compatible bucket.

// ErrInvalidKey is returned when a key is empty or would escape the storage root.
var ErrInvalidKey = errors.New("invalid object key")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage persists uploaded images under flat keys.
type Storage interface {
	// Put stores the content of r under key, replacing any existing object.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get opens the object stored under key. The caller must close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
}
