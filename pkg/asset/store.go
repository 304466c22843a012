package asset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store reads and writes image assets referenced by transactions. References
// are filesystem paths; content never travels through the record stores.
type Store interface {
	Read(ctx context.Context, ref string) ([]byte, error)
	// Write stores the bytes under a newly allocated, collision-free
	// reference and returns it.
	Write(ctx context.Context, data []byte, ext string) (string, error)
}

type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Read(_ context.Context, ref string) ([]byte, error) {
	// Bundles written by older app versions carry file:// references.
	path := strings.TrimPrefix(ref, "file://")
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read asset %q: %w", ref, err)
	}
	return data, nil
}

func (s *FileStore) Write(_ context.Context, data []byte, ext string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("could not create assets directory: %w", err)
	}
	if ext == "" {
		ext = "jpg"
	}
	// References are relative to the assets directory so the store can move.
	name := "restored_" + uuid.NewString() + "." + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("could not write asset: %w", err)
	}
	return name, nil
}
