package filestore

import (
	"context"
	"io"
)

// FileStore stores uploaded quote photos.
type FileStore interface {
	// Save writes the file and returns the stored path recorded on the quote.
	// Each call stores an independent copy; identical filenames never collide.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)

	// Open returns a reader over a previously stored path plus its content type.
	Open(ctx context.Context, storedPath string) (io.ReadCloser, string, error)
}
