package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalFileStore keeps uploads on the local filesystem under a single
// directory, one file per quote submission.
type LocalFileStore struct {
	dir string
}

func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalFileStore{dir: dir}, nil
}

// Save stores the upload as {fresh token}_{original filename}. The token is
// collision avoidance, not content addressing: uploading the same bytes twice
// produces two independent files.
func (s *LocalFileStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(filename))
	storedPath := filepath.Join(s.dir, name)

	f, err := os.Create(storedPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(storedPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(storedPath)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return storedPath, nil
}

func (s *LocalFileStore) Open(ctx context.Context, storedPath string) (io.ReadCloser, string, error) {
	fullPath, err := s.safeJoin(storedPath)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("photo not found")
		}
		return nil, "", fmt.Errorf("open upload file: %w", err)
	}
	return f, contentTypeByExt(fullPath), nil
}

// safeJoin resolves storedPath inside the upload dir and rejects traversal.
// Only the base name is honored; stored paths always live flat in the dir.
func (s *LocalFileStore) safeJoin(storedPath string) (string, error) {
	absDir, err := filepath.Abs(s.dir)
	if err != nil {
		return "", fmt.Errorf("invalid upload directory: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.dir, filepath.Base(storedPath)))
	if err != nil {
		return "", fmt.Errorf("invalid stored path: %w", err)
	}

	if !strings.HasPrefix(absPath, absDir+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}

func contentTypeByExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
