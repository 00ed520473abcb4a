// internal/storage/archive.go
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stocklens/wms-backend/internal/config"
)

// ReportArchive persists exported report files to an S3-compatible
// bucket so generated CSVs survive past the request that produced them.
type ReportArchive struct {
	client *minio.Client
	bucket string
}

// NewReportArchive connects to the configured object store. Returns
// nil (archiving disabled) when no endpoint is configured.
func NewReportArchive(cfg config.ArchiveConfig) (*ReportArchive, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("archive credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive bucket must be provided")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect report archive: %w", err)
	}

	return &ReportArchive{client: client, bucket: cfg.Bucket}, nil
}

// Put uploads one exported report file under the given object name.
func (a *ReportArchive) Put(ctx context.Context, objectName, contentType string, payload []byte) error {
	_, err := a.client.PutObject(ctx, a.bucket, objectName, bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("archive %s: %w", objectName, err)
	}
	return nil
}
