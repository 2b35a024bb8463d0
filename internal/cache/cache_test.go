package cache

import (
	"testing"
)

func TestFileCacheRoundTrip(t *testing.T) {
	t.Parallel()

	fileCache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("new file cache: %v", err)
	}

	if _, found, err := fileCache.Get("lifesync_data_1"); err != nil || found {
		t.Fatalf("expected miss on empty cache, found=%v err=%v", found, err)
	}

	payload := []byte(`{"habits":[]}`)
	if err := fileCache.Set("lifesync_data_1", payload); err != nil {
		t.Fatalf("set: %v", err)
	}

	loaded, found, err := fileCache.Get("lifesync_data_1")
	if err != nil || !found {
		t.Fatalf("expected hit after set, found=%v err=%v", found, err)
	}
	if string(loaded) != string(payload) {
		t.Fatalf("payload mismatch: got %s", loaded)
	}

	if err := fileCache.Remove("lifesync_data_1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, found, _ := fileCache.Get("lifesync_data_1"); found {
		t.Fatalf("expected miss after remove")
	}

	// removing a missing key is not an error
	if err := fileCache.Remove("lifesync_data_1"); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

func TestFileCacheSanitizesKeys(t *testing.T) {
	t.Parallel()

	fileCache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("new file cache: %v", err)
	}

	key := "../escape/attempt:1"
	if err := fileCache.Set(key, []byte("x")); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, found, err := fileCache.Get(key)
	if err != nil || !found || string(value) != "x" {
		t.Fatalf("expected sanitized key round-trip, found=%v err=%v", found, err)
	}
}
