package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"nexus-asset-manager/internal/domain"
	"nexus-asset-manager/internal/logger"
)

// LocalStorage keeps files under a single directory on the local filesystem
type LocalStorage struct {
	baseURL string
	rootDir string
}

// NewLocalStorage creates the root directory if needed
func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("%w: storage directory", domain.ErrConfigMissing)
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		rootDir: cfg.Dir,
	}, nil
}

// NewKey returns a unique key with the given prefix and extension, e.g. labels/<uuid>.html
func NewKey(prefix, ext string) string {
	return fmt.Sprintf("%s/%s%s", strings.Trim(prefix, "/"), uuid.New().String(), ext)
}

// SaveFile writes to a temp file in the target directory and renames it into place
func (s *LocalStorage) SaveFile(ctx context.Context, key string, reader io.Reader) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	logger.DebugContext(ctx, "Stored file", "key", key)
	return nil
}

// ReadFile reads file from local filesystem
func (s *LocalStorage) ReadFile(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file %s: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// FileExists checks if file exists in local filesystem
func (s *LocalStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	fullPath, err := s.resolve(key)
	if err != nil {
		return false, 0, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

// DeleteFile deletes file from local filesystem
func (s *LocalStorage) DeleteFile(ctx context.Context, key string) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// DownloadURL points at the file route of the HTTP API
func (s *LocalStorage) DownloadURL(key string) string {
	return fmt.Sprintf("%s/api/files?key=%s", s.baseURL, url.QueryEscape(key))
}

// LocalPath returns the filesystem path for a key
func (s *LocalStorage) LocalPath(key string) string {
	return filepath.Join(s.rootDir, filepath.FromSlash(key))
}

// resolve rejects keys that would escape the root directory
func (s *LocalStorage) resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return "", &domain.ValidationError{Field: "key", Reason: fmt.Sprintf("invalid storage key %q", key)}
	}
	return filepath.Join(s.rootDir, clean), nil
}
