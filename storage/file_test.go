package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRecipeState(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		filename string
		data     []byte
	}{
		{
			name:     "valid recipes file",
			filename: "recipes.json",
			data:     []byte(`[{"id": 1, "name": "Ratatouille"}]`),
		},
		{
			name:     "empty recipes file",
			filename: "empty.json",
			data:     []byte(`[]`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(tmpDir, tt.filename)
			require.NoError(t, os.WriteFile(filePath, tt.data, 0644))

			loaded, err := NewFileRecipeState(filePath).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.data, loaded)
		})
	}

	t.Run("load nonexistent file", func(t *testing.T) {
		_, err := NewFileRecipeState(filepath.Join(tmpDir, "nonexistent.json")).Load(context.Background())
		assert.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestFileBlob(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "state")
	blob := NewFileBlob(dir)

	t.Run("missing key", func(t *testing.T) {
		_, err := blob.Get(ctx, "favorites")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set creates the directory and round trips", func(t *testing.T) {
		require.NoError(t, blob.Set(ctx, "favorites", []byte(`[5]`)))

		got, err := blob.Get(ctx, "favorites")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[5]`), got)
		assert.FileExists(t, filepath.Join(dir, "favorites.json"))
		assert.NoFileExists(t, filepath.Join(dir, "favorites.json.tmp"))
	})

	t.Run("keys cannot escape the directory", func(t *testing.T) {
		require.NoError(t, blob.Set(ctx, "../escape", []byte(`x`)))
		assert.FileExists(t, filepath.Join(dir, "escape.json"))
	})
}

func TestMemoryBlob(t *testing.T) {
	ctx := context.Background()
	blob := NewMemoryBlob()

	_, err := blob.Get(ctx, "favorites")
	assert.ErrorIs(t, err, ErrNotFound)

	data := []byte(`[1,2]`)
	require.NoError(t, blob.Set(ctx, "favorites", data))
	data[1] = '9'

	got, err := blob.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got)
}
