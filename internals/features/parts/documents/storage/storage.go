package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	helper "mantenimiento_backend/internals/helpers"
)

var ErrNotFound = errors.New("document not found")

// Key addresses one stored document: <part>/<doc type>/<file>. Every
// component has passed helper.SafePathComponent.
type Key struct {
	Part    string
	DocType string
	File    string
}

// Folder addresses the documents of one part and document type.
type Folder struct {
	Part    string
	DocType string
}

func NewFolder(part, docType string) (Folder, error) {
	p, err := helper.SafePathComponent(part)
	if err != nil {
		return Folder{}, helper.FieldErr("partNumber", "invalid partNumber")
	}
	d, err := helper.SafePathComponent(docType)
	if err != nil {
		return Folder{}, helper.FieldErr("documentType", "invalid documentType")
	}
	return Folder{Part: p, DocType: d}, nil
}

func NewKey(part, docType, file string) (Key, error) {
	f, err := NewFolder(part, docType)
	if err != nil {
		return Key{}, err
	}
	name, err := helper.SafePathComponent(file)
	if err != nil {
		return Key{}, helper.FieldErr("fileName", "invalid fileName")
	}
	return Key{Part: f.Part, DocType: f.DocType, File: name}, nil
}

func (f Folder) Path() string { return f.Part + "/" + f.DocType }

func (k Key) Folder() Folder { return Folder{Part: k.Part, DocType: k.DocType} }

func (k Key) Path() string { return k.Part + "/" + k.DocType + "/" + k.File }

// URL is the public route the document is served from.
func (k Key) URL() string { return "/archivos/" + k.Path() }

// Store is a document backend. Implementations never see an unvalidated
// path component.
type Store interface {
	Put(ctx context.Context, k Key, r io.Reader, size int64, contentType string) error
	List(ctx context.Context, f Folder) ([]string, error)
	Open(ctx context.Context, k Key) (io.ReadCloser, error)
	Delete(ctx context.Context, k Key) error
	DeleteFolder(ctx context.Context, f Folder) (int, error)
	Name() string
}

// Backend names accepted by DOCUMENT_STORAGE.
const (
	BackendDisk  = "disk"
	BackendOSS   = "oss"
	BackendMinio = "minio"
)

// New builds the configured backend. uploadDir is only used by disk.
func New(ctx context.Context, backend, uploadDir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendDisk:
		return NewDiskStore(uploadDir)
	case BackendOSS:
		return NewOSSStoreFromEnv()
	case BackendMinio:
		return NewMinioStoreFromEnv(ctx)
	default:
		return nil, fmt.Errorf("unknown DOCUMENT_STORAGE %q", backend)
	}
}
