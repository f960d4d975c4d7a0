// Package bookmarks persists the dialog engine's bookmark blob between
// runs. The blob itself is opaque (the engine's serializer owns its
// format); the store wraps it in a small versioned YAML document and can
// watch the file so long-running applications pick up edits made by
// another instance.
package bookmarks

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const storeVersion = 1

// Store reads and writes one bookmark file.
type Store struct {
	// Path of the YAML store file.
	Path string
}

type document struct {
	Version   int       `yaml:"version"`
	SavedAt   time.Time `yaml:"saved_at"`
	Bookmarks string    `yaml:"bookmarks"`
}

// DefaultPath places the store under the user config directory.
func DefaultPath(appName string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, appName, "bookmarks.yaml"), nil
}

// Save writes blob to the store file atomically (write to a temp file in
// the same directory, then rename). Parent directories are created as
// needed.
func (s *Store) Save(blob string) error {
	doc := document{
		Version:   storeVersion,
		SavedAt:   time.Now().UTC(),
		Bookmarks: blob,
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode bookmark store: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create bookmark dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".bookmarks-*")
	if err != nil {
		return fmt.Errorf("create temp bookmark file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write bookmark store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close bookmark store: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace bookmark store: %w", err)
	}
	return nil
}

// Load returns the stored blob. A missing file is an empty blob, not an
// error; feed the result straight to Dialog.DeserializeBookmarks.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read bookmark store: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("decode bookmark store: %w", err)
	}
	if doc.Version > storeVersion {
		return "", fmt.Errorf("bookmark store version %d is newer than supported %d", doc.Version, storeVersion)
	}
	return doc.Bookmarks, nil
}
