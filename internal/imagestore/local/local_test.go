package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adithya700/Wadrobe/internal/imagestore"
)

func TestLocalImageStoreSaveAndOpen(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	imageData := []byte("fake jpeg data")

	path, err := store.Save(ctx, "shirt.jpg", bytes.NewReader(imageData))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, imagestore.PathPrefix))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	reader, mimeType, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/jpeg", mimeType)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, imageData, data)
}

func TestLocalImageStorePreservesExtension(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	path, err := store.Save(ctx, "sneakers.WEBP", bytes.NewReader([]byte("webp bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".webp"))

	reader, mimeType, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer reader.Close()
	assert.Equal(t, "image/webp", mimeType)
}

func TestLocalImageStoreDistinctPaths(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	first, err := store.Save(ctx, "same.png", bytes.NewReader([]byte("one")))
	require.NoError(t, err)
	second, err := store.Save(ctx, "same.png", bytes.NewReader([]byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalImageStoreDelete(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	path, err := store.Save(ctx, "hat.png", bytes.NewReader([]byte("test data")))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, path))

	_, _, err = store.Open(ctx, path)
	assert.Error(t, err)
}

func TestLocalImageStoreNotFound(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Open(context.Background(), "/uploads/nonexistent.jpg")
	assert.Error(t, err)
}

func TestLocalImageStorePathTraversal(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Open(context.Background(), "/uploads/../../etc/passwd")
	assert.Error(t, err)
}

func TestMimeTypeForPath(t *testing.T) {
	tests := []struct {
		path string
		mime string
	}{
		{"a.webp", "image/webp"},
		{"a.png", "image/png"},
		{"a.gif", "image/gif"},
		{"a.jpg", "image/jpeg"},
		{"a.jpeg", "image/jpeg"},
		{"a", "image/jpeg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.mime, MimeTypeForPath(tt.path), tt.path)
	}
}
