package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type FileRecipeState struct {
	FilePath string
}

func NewFileRecipeState(filePath string) *FileRecipeState {
	return &FileRecipeState{FilePath: filePath}
}

func (r *FileRecipeState) Load(ctx context.Context) ([]byte, error) {
	return os.ReadFile(r.FilePath)
}

// FileBlob stores each key as a file named <key>.json under Dir.
type FileBlob struct {
	Dir string
}

func NewFileBlob(dir string) *FileBlob {
	return &FileBlob{Dir: dir}
}

func (b *FileBlob) path(key string) string {
	return filepath.Join(b.Dir, filepath.Base(key)+".json")
}

func (b *FileBlob) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return data, err
}

func (b *FileBlob) Set(ctx context.Context, key string, data []byte) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := b.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path(key))
}
