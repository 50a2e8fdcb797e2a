package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore keeps uploaded files under a base directory, one subdirectory
// per resource kind (members, events, carousel). Stored paths are
// relative to the base directory so the database stays portable across
// deployments.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

// Save writes the content under kind/ with a random name, keeping only
// the original extension. It returns the relative path of the new file.
func (s *DiskStore) Save(kind, originalName string, content io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create dir %s: %w", dir, err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext
	relPath := filepath.ToSlash(filepath.Join(kind, name))

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	return relPath, nil
}

// Remove deletes a stored file. A file that is already gone is not an
// error.
func (s *DiskStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicURL maps a stored relative path to the URL it is served under.
func (s *DiskStore) PublicURL(relPath string) string {
	return "/uploads/" + relPath
}

// Dir returns the base directory, for mounting the static file server.
func (s *DiskStore) Dir() string { return s.baseDir }
