package s3

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pawtime-dev/pawtime/internal/config"
	"github.com/pawtime-dev/pawtime/internal/logger"
	"github.com/pawtime-dev/pawtime/internal/service"
)

var _ service.MediaStorage = (*Storage)(nil)

// Storage keeps profile images in an S3-compatible bucket.
type Storage struct {
	client        *minio.Client
	bucket        string
	publicBaseUrl string
}

func New(cfg config.S3) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}
	logger.Log.Info("S3 storage initialized", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)
	return &Storage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseUrl: strings.TrimRight(cfg.PublicBaseUrl, "/"),
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

func (s *Storage) Upload(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	ext := extensionFor(contentType)
	key := "profile/" + uuid.NewString() + ext

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return s.publicBaseUrl + "/" + key, nil
}

func (s *Storage) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromUrl(url)
	if !ok {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}

func (s *Storage) keyFromUrl(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.publicBaseUrl+"/")
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

func extensionFor(contentType string) string {
	// mime returns ".jpe" first for image/jpeg on some platforms.
	if contentType == "image/jpeg" {
		return ".jpg"
	}
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return path.Ext(contentType)
	}
	return exts[0]
}
