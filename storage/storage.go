package storage

import (
	"context"
	"mime/multipart"
	"sync"

	"golang.org/x/sync/errgroup"

	"scholarship/config"
)

// Uploader is the object storage collaborator: it takes an uploaded file and
// returns a public URL for it. The vendor behind it is a black box that may
// fail wholesale per call.
type Uploader interface {
	Upload(ctx context.Context, prefix string, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, url string) error
}

// Client is the global uploader instance, set by Init.
var Client Uploader

// Init connects the MinIO-backed uploader.
func Init() error {
	client, err := NewMinioUploader(config.AppConfig)
	if err != nil {
		return err
	}
	Client = client
	return nil
}

// UploadFields uploads every present file field concurrently and collects the
// resulting URL keyed by field name. The fan-out is bounded; the first failure
// cancels the remaining uploads and fails the joint wait.
func UploadFields(ctx context.Context, up Uploader, prefix string, files map[string]*multipart.FileHeader) (map[string]string, error) {
	urls := make(map[string]string, len(files))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	limit := 4
	if config.AppConfig != nil && config.AppConfig.UploadConcurrency > 0 {
		limit = config.AppConfig.UploadConcurrency
	}
	g.SetLimit(limit)

	for fieldName, file := range files {
		if file == nil {
			continue
		}
		fieldName, file := fieldName, file
		g.Go(func() error {
			url, err := up.Upload(ctx, prefix, file)
			if err != nil {
				return err
			}
			mu.Lock()
			urls[fieldName] = url
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// DeleteAll removes uploaded objects best effort, for cleanup after a failed
// registration transaction.
func DeleteAll(ctx context.Context, up Uploader, urls map[string]string) {
	for _, url := range urls {
		_ = up.Delete(ctx, url)
	}
}
