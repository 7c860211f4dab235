package storage

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

type GCSStorage struct {
	bucket          string
	credentialsFile string
}

// NewGCS only records the target; authentication happens on Upload so that a
// bad credential file surfaces during the upload step, after the archive has
// been written.
func NewGCS(bucket, credentialsFile string) *GCSStorage {
	return &GCSStorage{
		bucket:          bucket,
		credentialsFile: credentialsFile,
	}
}

// Upload authenticates with the service-account file, resolves the bucket
// and streams the local file to a blob named remoteName.
func (g *GCSStorage) Upload(ctx context.Context, localPath string, remoteName string) error {
	service, err := gcs.NewService(ctx, option.WithCredentialsFile(g.credentialsFile))
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	if _, err := service.Buckets.Get(g.bucket).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to resolve bucket %s: %w", g.bucket, err)
	}

	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	object := &gcs.Object{Name: remoteName}
	_, err = service.Objects.Insert(g.bucket, object).
		Media(file).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to upload to gcs: %w", err)
	}

	return nil
}
