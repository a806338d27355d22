package storage

import (
	"context"
	"errors"
	"io"

	ossHelper "mantenimiento_backend/internals/helpers/oss"
)

// OSSStore keeps documents in an Aliyun OSS bucket under
// <prefix>/<part>/<doc type>/<file>.
type OSSStore struct {
	svc *ossHelper.OSSService
}

func NewOSSStoreFromEnv() (*OSSStore, error) {
	svc, err := ossHelper.NewOSSServiceFromEnv(envOr("DOCUMENT_PREFIX", "documentos"))
	if err != nil {
		return nil, err
	}
	return &OSSStore{svc: svc}, nil
}

func (s *OSSStore) Name() string { return BackendOSS }

func (s *OSSStore) Put(ctx context.Context, k Key, r io.Reader, _ int64, contentType string) error {
	return s.svc.UploadStream(ctx, s.svc.Key(k.Part, k.DocType, k.File), r, contentType)
}

func (s *OSSStore) List(ctx context.Context, f Folder) ([]string, error) {
	return s.svc.ListNames(ctx, s.svc.Key(f.Part, f.DocType))
}

func (s *OSSStore) Open(ctx context.Context, k Key) (io.ReadCloser, error) {
	body, err := s.svc.GetObject(ctx, s.svc.Key(k.Part, k.DocType, k.File))
	if errors.Is(err, ossHelper.ErrObjectNotFound) {
		return nil, ErrNotFound
	}
	return body, err
}

func (s *OSSStore) Delete(ctx context.Context, k Key) error {
	err := s.svc.DeleteObject(ctx, s.svc.Key(k.Part, k.DocType, k.File))
	if errors.Is(err, ossHelper.ErrObjectNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *OSSStore) DeleteFolder(ctx context.Context, f Folder) (int, error) {
	names, err := s.List(ctx, f)
	if err != nil {
		return 0, err
	}
	keys := make([]string, 0, len(names))
	for _, n := range names {
		keys = append(keys, s.svc.Key(f.Part, f.DocType, n))
	}
	if err := s.svc.DeleteObjects(ctx, keys); err != nil {
		return 0, err
	}
	return len(keys), nil
}
