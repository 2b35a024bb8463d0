// Package cache is the on-device durable key-value store used for
// instant working-set hydration and offline backup. Keys are scoped per
// user by the caller; values are opaque serialized state.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Cache interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// FileCache keeps one JSON file per key under a directory.
type FileCache struct {
	dir string
}

func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &FileCache{dir: dir}, nil
}

func (cache *FileCache) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(cache.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cache entry %s: %w", key, err)
	}
	return data, true, nil
}

func (cache *FileCache) Set(key string, value []byte) error {
	target := cache.pathFor(key)
	temp := target + ".tmp"
	if err := os.WriteFile(temp, value, 0o600); err != nil {
		return fmt.Errorf("write cache entry %s: %w", key, err)
	}
	if err := os.Rename(temp, target); err != nil {
		return fmt.Errorf("commit cache entry %s: %w", key, err)
	}
	return nil
}

func (cache *FileCache) Remove(key string) error {
	if err := os.Remove(cache.pathFor(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove cache entry %s: %w", key, err)
	}
	return nil
}

func (cache *FileCache) pathFor(key string) string {
	return filepath.Join(cache.dir, sanitizeKey(key)+".json")
}

func sanitizeKey(key string) string {
	var builder strings.Builder
	for _, char := range key {
		switch {
		case char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z',
			char >= '0' && char <= '9', char == '-', char == '_', char == '.':
			builder.WriteRune(char)
		default:
			builder.WriteRune('-')
		}
	}
	return builder.String()
}
