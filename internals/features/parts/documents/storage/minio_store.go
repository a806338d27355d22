package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore keeps documents in an S3-compatible bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
	prefix string
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func NewMinioStoreFromEnv(ctx context.Context) (*MinioStore, error) {
	endpoint := envOr("MINIO_ENDPOINT", "")
	bucket := envOr("MINIO_BUCKET", "")
	if endpoint == "" || bucket == "" {
		return nil, fmt.Errorf("missing env: MINIO_ENDPOINT/MINIO_BUCKET")
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: envOr("MINIO_USE_SSL", "false") == "true",
	})
	if err != nil {
		return nil, fmt.Errorf("minio.New: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinioStore{client: client, bucket: bucket, prefix: strings.Trim(envOr("DOCUMENT_PREFIX", "documentos"), "/")}, nil
}

func (s *MinioStore) Name() string { return BackendMinio }

func (s *MinioStore) object(parts ...string) string {
	if s.prefix == "" {
		return strings.Join(parts, "/")
	}
	return s.prefix + "/" + strings.Join(parts, "/")
}

func (s *MinioStore) Put(ctx context.Context, k Key, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.object(k.Part, k.DocType, k.File), r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) List(ctx context.Context, f Folder) ([]string, error) {
	prefix := s.object(f.Part, f.DocType) + "/"
	names := make([]string, 0)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if name := strings.TrimPrefix(obj.Key, prefix); name != "" && !strings.Contains(name, "/") {
			names = append(names, name)
		}
	}
	return names, nil
}

func (s *MinioStore) Open(ctx context.Context, k Key) (io.ReadCloser, error) {
	name := s.object(k.Part, k.DocType, k.File)
	if _, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
}

func (s *MinioStore) Delete(ctx context.Context, k Key) error {
	name := s.object(k.Part, k.DocType, k.File)
	if _, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ErrNotFound
		}
		return err
	}
	return s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{})
}

func (s *MinioStore) DeleteFolder(ctx context.Context, f Folder) (int, error) {
	names, err := s.List(ctx, f)
	if err != nil {
		return 0, err
	}
	for i, n := range names {
		if err := s.client.RemoveObject(ctx, s.bucket, s.object(f.Part, f.DocType, n), minio.RemoveObjectOptions{}); err != nil {
			return i, err
		}
	}
	return len(names), nil
}
