// internal/adapters/storage/local.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ammerola/pos-be/internal/core/domain"
	"github.com/ammerola/pos-be/internal/core/ports"
)

// LocalStorage implements ports.FileStorage on the local filesystem
type LocalStorage struct {
	basePath string
	logger   *slog.Logger
}

var _ ports.FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a new local storage client rooted at basePath
func NewLocalStorage(basePath string, logger *slog.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		basePath: basePath,
		logger:   logger.With(slog.String("storage", "local")),
	}, nil
}

// path resolves key inside basePath and rejects keys that escape it.
func (l *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" {
		return "", domain.Errorf(domain.KindValidation, "storage.path", "invalid file key %q", key)
	}
	return filepath.Join(l.basePath, filepath.FromSlash(clean)), nil
}

// Upload writes body to a temporary file and renames it into place
func (l *LocalStorage) Upload(ctx context.Context, key string, body io.Reader, _ string) (string, error) {
	path, err := l.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}

	l.logger.InfoContext(ctx, "file uploaded", slog.String("key", key))
	return path, nil
}

// Download opens the file stored under key
func (l *LocalStorage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := l.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Errorf(domain.KindNotFound, "storage.download", "file %s not found", key)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// Delete removes the file; a missing file is not an error
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	l.logger.InfoContext(ctx, "file deleted", slog.String("key", key))
	return nil
}

// List returns files whose key starts with prefix, sorted by key
func (l *LocalStorage) List(_ context.Context, prefix string) ([]ports.StoredFile, error) {
	var files []ports.StoredFile

	err := filepath.WalkDir(l.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".upload-") {
			return nil
		}
		rel, err := filepath.Rel(l.basePath, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, ports.StoredFile{Key: key, Size: info.Size(), LastModified: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Key < files[j].Key })
	return files, nil
}

// PresignedURL returns a file URL; local files carry no signature or expiry
func (l *LocalStorage) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	path, err := l.path(key)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}
