// Package storage uploads media files to S3-compatible object storage and
// hands back public URLs. Callers never see object keys; the URL is the
// only handle the rest of the system keeps.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"viewtube/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader stores uploaded media in object storage.
type Uploader interface {
	Upload(ctx context.Context, folder, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

type minioUploader struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// NewMinioUploader connects to the configured MinIO endpoint and ensures
// the media bucket exists.
func NewMinioUploader(ctx context.Context, cfg *config.Config) (Uploader, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio bucket create: %w", err)
		}
	}

	return &minioUploader{
		client:   client,
		bucket:   cfg.MinioBucket,
		endpoint: cfg.MinioEndpoint,
		useSSL:   cfg.MinioUseSSL,
	}, nil
}

// Upload streams the file into the bucket under a random object key,
// keeping only the original extension, and returns the public URL.
func (u *minioUploader) Upload(
	ctx context.Context,
	folder, filename string,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	objectName := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	_, err := u.client.PutObject(ctx, u.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("minio put: %w", err)
	}

	scheme := "http"
	if u.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, u.endpoint, u.bucket, objectName), nil
}
