package assets

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestSaveAcceptsPNG(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	url, err := store.Save(pngBytes(t))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, URLPrefix+"/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("url = %q, want %s/<uuid>.png", url, URLPrefix)
	}

	name := strings.TrimPrefix(url, URLPrefix+"/")
	if _, err := os.Stat(filepath.Join(store.Dir(), name)); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestSaveRejectsNonImages(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Save([]byte("%PDF-1.4 definitely not an image")); !errors.Is(err, ErrUnsupportedImageType) {
		t.Fatalf("text payload error = %v, want %v", err, ErrUnsupportedImageType)
	}
	if _, err := store.Save(nil); !errors.Is(err, ErrUnsupportedImageType) {
		t.Fatalf("empty payload error = %v, want %v", err, ErrUnsupportedImageType)
	}

	// GIF is a real image but not an accepted type
	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")
	if _, err := store.Save(gif); !errors.Is(err, ErrUnsupportedImageType) {
		t.Fatalf("gif error = %v, want %v", err, ErrUnsupportedImageType)
	}
}

func TestSaveRejectsOversizedUploads(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	oversized := append(pngBytes(t), make([]byte, MaxUploadBytes)...)
	if _, err := store.Save(oversized); !errors.Is(err, ErrUploadTooLarge) {
		t.Fatalf("oversized error = %v, want %v", err, ErrUploadTooLarge)
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	data := pngBytes(t)
	first, err := store.Save(data)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := store.Save(data)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first == second {
		t.Fatalf("identical uploads got the same name: %q", first)
	}
}
