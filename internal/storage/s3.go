package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/simonindia/safety-api/internal/config"
	"go.uber.org/zap"
)

// S3Store implements BlobStore against S3 or an S3-compatible endpoint.
// Uploads that fail fall back to the wrapped local store, and retrieval
// checks object storage before local disk, so a partially migrated uploads
// folder keeps working.
type S3Store struct {
	client    *minio.Client
	bucket    string
	region    string
	endpoint  string // custom endpoint URL, empty for AWS default
	keyPrefix string
	fallback  *LocalStore
	logger    *zap.Logger
}

// NewS3Store creates an object-storage blob store with local fallback
func NewS3Store(cfg *config.StorageConfig, fallback *LocalStore, logger *zap.Logger) (*S3Store, error) {
	host := fmt.Sprintf("s3.%s.amazonaws.com", cfg.Region)
	secure := true
	if cfg.Endpoint != "" {
		host = cfg.Endpoint
		if strings.Contains(host, "://") {
			secure = strings.HasPrefix(host, "https://")
			host = host[strings.Index(host, "://")+3:]
		} else {
			secure = cfg.UseSSL
		}
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		endpoint:  strings.TrimSuffix(cfg.Endpoint, "/"),
		keyPrefix: cfg.KeyPrefix,
		fallback:  fallback,
		logger:    logger,
	}, nil
}

// Store uploads the blob and returns its fully-qualified URL. Upload failure
// falls back to local storage so the observation is never lost.
func (s *S3Store) Store(ctx context.Context, data []byte, contentType string, prefix string) (string, error) {
	filename := blobFilename(prefix, contentType)
	key := s.keyPrefix + "/" + filename

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		s.logger.Warn("object storage upload failed, falling back to local disk",
			zap.Error(err),
			zap.String("key", key),
		)
		return s.fallback.Store(ctx, data, contentType, prefix)
	}

	return s.objectURL(key), nil
}

// Open retrieves a blob, trying object storage first and local disk second
func (s *S3Store) Open(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	key := s.keyPrefix + "/" + filename

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err == nil {
		// GetObject is lazy; Stat confirms the object actually exists
		if info, statErr := obj.Stat(); statErr == nil {
			contentType := info.ContentType
			if contentType == "" {
				contentType = "application/octet-stream"
			}
			return obj, contentType, nil
		}
		_ = obj.Close()
	}

	return s.fallback.Open(ctx, filename)
}

// objectURL builds the public URL for a stored key: the provider-default
// virtual-hosted form for AWS, the path form for custom endpoints
func (s *S3Store) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
