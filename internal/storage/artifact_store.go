package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactStore serves generated slide decks by filename from a single
// output directory. Artifacts are written once per task under a unique
// name; the store never overwrites or evicts.
type ArtifactStore struct {
	dir    string
	logger *slog.Logger
}

// NewArtifactStore creates the output directory if needed and returns a
// store rooted at it.
func NewArtifactStore(dir string, logger *slog.Logger) (*ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return &ArtifactStore{
		dir:    dir,
		logger: logger.With("component", "artifact_store"),
	}, nil
}

// Dir returns the directory the renderer writes artifacts into.
func (s *ArtifactStore) Dir() string {
	return s.dir
}

// Resolve validates filename and returns the artifact's path inside the
// store. Names containing separators or parent-directory traversal are
// rejected with ErrInvalidFilename regardless of whether the traversed path
// exists; missing artifacts yield ErrArtifactNotFound.
func (s *ArtifactStore) Resolve(filename string) (string, error) {
	if filename == "" ||
		strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	path := filepath.Join(s.dir, filename)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrArtifactNotFound
		}
		return "", fmt.Errorf("failed to stat artifact: %w", err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	return path, nil
}

// Open resolves filename and opens the artifact for reading.
func (s *ArtifactStore) Open(filename string) (*os.File, error) {
	path, err := s.Resolve(filename)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}

	return f, nil
}
