package local

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStoreSaveAndOpen(t *testing.T) {
	tmpdir := t.TempDir()
	store, err := NewLocalFileStore(tmpdir)
	require.NoError(t, err)

	ctx := context.Background()
	photoData := []byte("fake jpeg data")

	stored, err := store.Save(ctx, "photo.jpg", bytes.NewReader(photoData))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored, "_photo.jpg"))
	assert.Equal(t, tmpdir, filepath.Dir(stored))

	reader, contentType, err := store.Open(ctx, stored)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/jpeg", contentType)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, photoData, data)
}

func TestLocalFileStoreSameNameNoOverwrite(t *testing.T) {
	tmpdir := t.TempDir()
	store, err := NewLocalFileStore(tmpdir)
	require.NoError(t, err)

	ctx := context.Background()

	first, err := store.Save(ctx, "photo.jpg", bytes.NewReader([]byte("first")))
	require.NoError(t, err)
	second, err := store.Save(ctx, "photo.jpg", bytes.NewReader([]byte("second")))
	require.NoError(t, err)

	// Fresh token per upload, so identical names produce distinct files
	assert.NotEqual(t, first, second)

	reader, _, err := store.Open(ctx, first)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)
}

func TestLocalFileStoreNotFound(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Open(context.Background(), "nonexistent.jpg")
	assert.Error(t, err)
}

func TestLocalFileStoreContentTypes(t *testing.T) {
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	stored, err := store.Save(ctx, "dump.png", bytes.NewReader([]byte("png data")))
	require.NoError(t, err)

	reader, contentType, err := store.Open(ctx, stored)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/png", contentType)
}
