package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore implements BlobStore on the local filesystem
type LocalStore struct {
	basePath     string
	publicPrefix string
}

// NewLocalStore creates a local blob store rooted at basePath
func NewLocalStore(basePath, publicPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{
		basePath:     basePath,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}, nil
}

// Store writes the blob to disk and returns its public serving path
func (s *LocalStore) Store(ctx context.Context, data []byte, contentType string, prefix string) (string, error) {
	filename := blobFilename(prefix, contentType)
	fullPath := filepath.Join(s.basePath, filename)

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return s.publicPrefix + "/" + filename, nil
}

// Open returns the blob content from disk. Filenames are restricted to the
// base directory; traversal attempts are rejected as not-found.
func (s *LocalStore) Open(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	if filename != filepath.Base(filename) {
		return nil, "", fmt.Errorf("blob not found: %s", filename)
	}

	file, err := os.Open(filepath.Join(s.basePath, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("blob not found: %s", filename)
		}
		return nil, "", fmt.Errorf("failed to open blob: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return file, contentType, nil
}
