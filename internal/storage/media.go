// Package storage is the blob-store boundary: save bytes under a
// relative path, hand back the public URL the catalog embeds. The
// store is local disk served by the guarded /media/* route.
package storage

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var ErrBadPath = errors.New("ruta de archivo inválida")

type MediaStore struct {
	Dir string
}

func NewMediaStore(dir string) *MediaStore {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &MediaStore{Dir: dir}
}

// Save writes the blob under the store root. Paths are relative and
// must not escape the root.
func (m *MediaStore) Save(rel string, data []byte) error {
	full, err := m.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

// PublicURL maps a stored path to the URL the templates embed.
func (m *MediaStore) PublicURL(rel string) string {
	return "/media/" + path.Clean(strings.TrimPrefix(rel, "/"))
}

func (m *MediaStore) resolve(rel string) (string, error) {
	clean := filepath.Clean(strings.TrimPrefix(rel, "/"))
	if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return "", ErrBadPath
	}
	return filepath.Join(m.Dir, clean), nil
}
