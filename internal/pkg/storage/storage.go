package storage

import (
	"context"
	"io"
)

// FileStorage persists evidence photos and avatars. The core only keeps
// the returned references; it never inspects image content.
type FileStorage interface {
	// Upload uploads a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL returns a public URL for a stored path
	GetURL(ctx context.Context, path string) (string, error)
}
