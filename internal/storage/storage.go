package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/simonindia/safety-api/internal/config"
	"go.uber.org/zap"
)

// BlobStore persists binary attachments (photos, PDF reports) under a
// generated filename and returns a retrievable reference: a path under the
// public serving prefix for local storage, a fully-qualified URL for object
// storage.
type BlobStore interface {
	// Store writes raw bytes and returns the reference for the new blob
	Store(ctx context.Context, data []byte, contentType string, prefix string) (string, error)
	// Open retrieves a stored blob by filename, returning the content and
	// its content type
	Open(ctx context.Context, filename string) (io.ReadCloser, string, error)
}

// NewBlobStore creates a blob store based on configuration. Without S3
// credentials everything is stored on local disk; with them, uploads go to
// object storage and fall back to local disk on failure.
func NewBlobStore(cfg *config.StorageConfig, logger *zap.Logger) (BlobStore, error) {
	local, err := NewLocalStore(cfg.LocalPath, cfg.PublicPrefix)
	if err != nil {
		return nil, err
	}
	if !cfg.ObjectStorageEnabled() {
		return local, nil
	}
	return NewS3Store(cfg, local, logger)
}

// blobFilename generates a collision-resistant filename of the form
// {prefix}_{random-hex}.{ext}. The extension comes from the MIME subtype,
// with "jpeg" normalized to "jpg" and "bin" as the fallback.
func blobFilename(prefix, contentType string) string {
	ext := "bin"
	if idx := strings.LastIndex(contentType, "/"); idx >= 0 && idx < len(contentType)-1 {
		ext = contentType[idx+1:]
		if ext == "jpeg" {
			ext = "jpg"
		}
	}
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%s.%s", prefix, hex, ext)
}

// IsDataURL reports whether a value carries an inline base64 payload rather
// than an existing blob reference
func IsDataURL(value string) bool {
	return strings.HasPrefix(value, "data:")
}

// StoreDataURL persists an inline `data:<mime>;base64,<data>` payload through
// the given store and returns the resulting reference. Any other value is
// treated as an existing reference and passed through unchanged, which makes
// re-submission of already-stored references idempotent.
func StoreDataURL(ctx context.Context, store BlobStore, value, prefix string) (string, error) {
	if !IsDataURL(value) {
		return value, nil
	}

	header, payload, found := strings.Cut(value, ",")
	if !found {
		return "", fmt.Errorf("malformed data URL: missing payload separator")
	}

	// header example: data:image/png;base64
	contentType := "application/octet-stream"
	meta := strings.TrimPrefix(header, "data:")
	if idx := strings.Index(meta, ";"); idx >= 0 {
		meta = meta[:idx]
	}
	if meta != "" {
		contentType = meta
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode data URL payload: %w", err)
	}

	return store.Store(ctx, data, contentType, prefix)
}
