package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadStore persists uploaded document bytes under collision-resistant
// temporary names until the pipeline has read them.
type UploadStore struct {
	dir    string
	logger *slog.Logger
}

// NewUploadStore creates the upload directory if needed and returns a store
// rooted at it.
func NewUploadStore(dir string, logger *slog.Logger) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	return &UploadStore{
		dir:    dir,
		logger: logger.With("component", "upload_store"),
	}, nil
}

// Save writes the uploaded bytes to a new file named
// <unix-nanos>_<short-uuid>_<sanitized original name> and returns its path.
// Two simultaneous uploads of the same original name get distinct paths.
func (s *UploadStore) Save(r io.Reader, originalFilename string) (string, error) {
	name := fmt.Sprintf("%d_%s_%s",
		time.Now().UnixNano(),
		uuid.NewString()[:8],
		SanitizeBaseName(originalFilename))
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	s.logger.Debug("upload persisted", "path", path)
	return path, nil
}

// Remove deletes a previously saved upload. Removing a path that is already
// gone is not an error; cleanup must be safe to run on every pipeline exit.
func (s *UploadStore) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload %s: %w", path, err)
	}

	s.logger.Debug("upload removed", "path", path)
	return nil
}

// SanitizeBaseName reduces a client-supplied filename to a safe base name:
// any directory components are dropped and path separators stripped. An
// empty or degenerate name becomes "upload".
func SanitizeBaseName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.ReplaceAll(base, string(os.PathSeparator), "")
	if base == "" || base == "." || base == ".." {
		return "upload"
	}
	return base
}
