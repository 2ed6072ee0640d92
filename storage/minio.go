package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"scholarship/config"
)

// MinioUploader stores documents in a MinIO bucket and serves them through a
// public base URL.
type MinioUploader struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioUploader initializes the MinIO client and ensures the target bucket exists.
func NewMinioUploader(cfg *config.Config) (*MinioUploader, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.MinioBucket, err)
		}
	}

	return &MinioUploader{
		client:    client,
		bucket:    cfg.MinioBucket,
		publicURL: strings.TrimRight(cfg.MinioPublicURL, "/"),
	}, nil
}

// Upload streams the file to the bucket under a unique key and returns the
// public URL.
func (u *MinioUploader) Upload(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file %q: %w", file.Filename, err)
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	objectKey := prefix + "/" + uuid.NewString() + ext

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = u.client.PutObject(ctx, u.bucket, objectKey, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", objectKey, err)
	}

	return u.publicURL + "/" + u.bucket + "/" + objectKey, nil
}

// Delete removes an object given its public URL. A missing object is treated
// as success.
func (u *MinioUploader) Delete(ctx context.Context, url string) error {
	objectKey := strings.TrimPrefix(url, u.publicURL+"/"+u.bucket+"/")
	if objectKey == "" || objectKey == url {
		return nil
	}
	if err := u.client.RemoveObject(ctx, u.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		reason := strings.ToLower(err.Error())
		if strings.Contains(reason, "nosuchkey") || strings.Contains(reason, "not found") {
			return nil
		}
		return fmt.Errorf("remove object %q: %w", objectKey, err)
	}
	return nil
}
