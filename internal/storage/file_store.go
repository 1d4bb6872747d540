package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrOutsideStore is returned for paths that do not belong to the store.
var ErrOutsideStore = errors.New("path is outside the upload directory")

// FileStore persists uploaded documents.
type FileStore interface {
	// Save writes r under a collision-free name derived from name and returns
	// the stored path and the number of bytes written.
	Save(ctx context.Context, name string, r io.Reader) (path string, size int64, err error)
	Remove(path string) error
}

// LocalStore keeps uploads in a single directory on local disk.
type LocalStore struct {
	dir string
	now func() time.Time
}

var _ FileStore = (*LocalStore)(nil)

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: filepath.Clean(dir), now: time.Now}, nil
}

// Dir returns the upload directory.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save stores the upload as "<unix millis>-<sanitized name>".
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	base := sanitizeFilename(name)
	stored := fmt.Sprintf("%d-%s", s.now().UnixMilli(), base)
	path := filepath.Join(s.dir, stored)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		// same millisecond, same name
		path = filepath.Join(s.dir, fmt.Sprintf("%d-%s-%s", s.now().UnixMilli(), uuid.NewString()[:8], base))
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return "", 0, fmt.Errorf("create upload file: %w", err)
	}

	size, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("write upload file: %w", err)
	}
	return path, size, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (s *LocalStore) Remove(path string) error {
	if !s.contains(path) {
		return ErrOutsideStore
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

func (s *LocalStore) contains(path string) bool {
	rel, err := filepath.Rel(s.dir, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && !strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel)
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "upload"
	}
	return base
}
