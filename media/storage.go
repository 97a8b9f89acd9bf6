package media

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

// UploadResult is what the object store hands back for a persisted file.
type UploadResult struct {
	URL         string
	StoragePath string
}

// ObjectStorage is the narrow contract the processor and the delete path
// need from the remote object store.
type ObjectStorage interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (UploadResult, error)
	Delete(ctx context.Context, storagePath string) error
}

// BucketStorage implements ObjectStorage on a Cloud Storage bucket.
type BucketStorage struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewBucketStorage(bucket *storage.BucketHandle, bucketName string) *BucketStorage {
	return &BucketStorage{
		bucket:     bucket,
		bucketName: strings.TrimSpace(bucketName),
	}
}

func (s *BucketStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (UploadResult, error) {
	if s.bucket == nil {
		return UploadResult{}, fmt.Errorf("storage bucket is not configured")
	}
	if path == "" || len(data) == 0 {
		return UploadResult{}, fmt.Errorf("object path and data are required")
	}

	w := s.bucket.Object(path).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return UploadResult{}, fmt.Errorf("write object %q: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("finalize object %q: %w", path, err)
	}

	return UploadResult{
		URL:         fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, path),
		StoragePath: path,
	}, nil
}

func (s *BucketStorage) Delete(ctx context.Context, storagePath string) error {
	if s.bucket == nil || storagePath == "" {
		return nil
	}
	if err := s.bucket.Object(storagePath).Delete(ctx); err != nil {
		return fmt.Errorf("delete object %q: %w", storagePath, err)
	}
	return nil
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ObjectPath builds a collision-resistant storage path for a project media
// file: projects/{projectID}/media/{timestamp}_{sanitizedName}.
func ObjectPath(projectID, fileName string, now time.Time) string {
	return fmt.Sprintf("projects/%s/media/%d_%s", projectID, now.UnixMilli(), sanitizeName(fileName))
}

func sanitizeName(name string) string {
	sanitized := unsafeNameChars.ReplaceAllString(name, "_")
	if sanitized == "" {
		return "file"
	}
	return sanitized
}
