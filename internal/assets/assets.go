// Package assets stores user-uploaded images on local disk and hands
// back the public URL they are served under.
package assets

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MaxUploadBytes caps a single image at 5 MiB.
const MaxUploadBytes = 5 * 1024 * 1024

// URLPrefix is the route prefix uploaded files are served under.
const URLPrefix = "/uploads"

var (
	ErrUploadTooLarge       = errors.New("upload exceeds size limit")
	ErrUnsupportedImageType = errors.New("unsupported image type")
)

// mime type (sniffed, never trusted from the client) -> file extension
var extensionsByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (store *Store) Dir() string { return store.dir }

// Save validates the image and writes it under a generated name,
// returning the URL path clients can fetch it from.
func (store *Store) Save(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrUnsupportedImageType
	}
	if len(data) > MaxUploadBytes {
		return "", ErrUploadTooLarge
	}

	extension, ok := extensionsByType[http.DetectContentType(data)]
	if !ok {
		return "", ErrUnsupportedImageType
	}

	name := uuid.NewString() + extension
	if err := os.WriteFile(filepath.Join(store.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return URLPrefix + "/" + name, nil
}
