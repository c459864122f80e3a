// Package objectstore wraps the MinIO client used to fetch bulk-validation
// input files. It carries only the read path: this repository never
// uploads objects, so the upload/presign surface the source storage
// service exposes is not reproduced here.
package objectstore

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/headuck/gophonelite/platform/config"
)

// Store fetches objects out of a MinIO bucket.
type Store struct {
	client *minio.Client
	bucket string
}

// New builds a Store, or nil if object storage is not configured.
func New(cfg config.MinIOConfig) (*Store, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, nil
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("objectstore: creating MinIO client: %w", err)
	}

	return &Store{client: client, bucket: cfg.GetMinIOBulkValidateBucket()}, nil
}

// Get streams objectKey out of the configured bucket. The caller must close
// the returned reader.
func (s *Store) Get(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("objectstore: getting object %s: %w", objectKey, err)
	}
	// GetObject does not itself fail on a missing key; the first Read does.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, fmt.Errorf("objectstore: object %s: %w", objectKey, err)
	}
	return obj, nil
}
