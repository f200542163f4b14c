package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// PageCache persists fetched upstream documents on disk under a base
// directory, so slow-moving pages like the program requirements page are not
// re-fetched on every run.
type PageCache struct {
	baseDir string
}

// NewPageCache ensures the base directory exists and returns a handle.
func NewPageCache(baseDir string) (*PageCache, error) {
	if baseDir == "" {
		baseDir = "./cache"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &PageCache{baseDir: baseDir}, nil
}

// Load returns the cached document and true, or nil and false on a miss.
func (c *PageCache) Load(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.resolve(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cached page: %w", err)
	}
	return data, true, nil
}

// Store writes the document under the cache directory.
func (c *PageCache) Store(name string, data []byte) error {
	path := c.resolve(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("prepare cache directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cached page: %w", err)
	}
	return nil
}

// Invalidate removes a cached document if present.
func (c *PageCache) Invalidate(name string) error {
	if err := os.Remove(c.resolve(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cached page: %w", err)
	}
	return nil
}

func (c *PageCache) resolve(name string) string {
	return filepath.Join(c.baseDir, filepath.Clean("/"+name))
}
