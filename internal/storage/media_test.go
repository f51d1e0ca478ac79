package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"artesania/internal/storage"
)

func TestSaveWritesUnderRoot(t *testing.T) {
	store := storage.NewMediaStore(t.TempDir())

	if err := store.Save("products/abc/0.jpg", []byte("jpegbytes")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(store.Dir, "products", "abc", "0.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "jpegbytes" {
		t.Fatalf("bad content: %q", got)
	}
}

func TestSaveRejectsEscapingPaths(t *testing.T) {
	store := storage.NewMediaStore(t.TempDir())

	for _, rel := range []string{"../outside.jpg", "products/../../x", "."} {
		if err := store.Save(rel, []byte("x")); !errors.Is(err, storage.ErrBadPath) {
			t.Fatalf("Save(%q): want ErrBadPath, got %v", rel, err)
		}
	}
}

func TestPublicURL(t *testing.T) {
	store := storage.NewMediaStore(t.TempDir())

	if got := store.PublicURL("products/abc/0.jpg"); got != "/media/products/abc/0.jpg" {
		t.Fatalf("got %q", got)
	}
	// a leading slash in the stored path must not double up
	if got := store.PublicURL("/products/abc/0.jpg"); got != "/media/products/abc/0.jpg" {
		t.Fatalf("got %q", got)
	}
}
