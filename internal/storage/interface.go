package storage

import (
	"context"
	"io"
)

// StorageInterface defines the backend for generated print output and
// imported document attachments.
type StorageInterface interface {
	// SaveFile writes the reader to key, replacing any previous content.
	// Readers never observe a partially written file.
	SaveFile(ctx context.Context, key string, reader io.Reader) error

	// ReadFile opens the file stored under key
	ReadFile(ctx context.Context, key string) (io.ReadCloser, error)

	// FileExists checks if a file exists and returns its size
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file. Missing files are not an error.
	DeleteFile(ctx context.Context, key string) error

	// DownloadURL returns the URL the HTTP API serves key from
	DownloadURL(key string) string

	// LocalPath returns the filesystem path for a key
	LocalPath(key string) string
}
