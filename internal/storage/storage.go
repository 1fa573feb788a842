package storage

import (
	"context"
	"io"
)

// ObjectStorage defines the interface for the backup target: the backup
// tool pushes snapshots of the workout CSV file to it and pulls them
// back for restore.
type ObjectStorage interface {
	// Upload stores the object under the given key.
	Upload(ctx context.Context, objectKey string, body io.Reader, contentType string) error

	// Download retrieves an object; the caller closes the reader.
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
