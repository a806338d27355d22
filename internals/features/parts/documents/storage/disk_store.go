package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiskStore keeps documents under Root/<part>/<doc type>/<file>.
type DiskStore struct {
	Root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if strings.TrimSpace(root) == "" {
		root = "uploads"
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{Root: abs}, nil
}

func (s *DiskStore) Name() string { return BackendDisk }

// resolve joins parts under Root and re-checks the result stays inside it.
func (s *DiskStore) resolve(parts ...string) (string, error) {
	p := filepath.Join(append([]string{s.Root}, parts...)...)
	rel, err := filepath.Rel(s.Root, p)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("path escapes upload dir")
	}
	return p, nil
}

func (s *DiskStore) Put(ctx context.Context, k Key, r io.Reader, _ int64, _ string) error {
	dir, err := s.resolve(k.Part, k.DocType)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	dst, err := s.resolve(k.Part, k.DocType, k.File)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

func (s *DiskStore) List(_ context.Context, f Folder) ([]string, error) {
	dir, err := s.resolve(f.Part, f.DocType)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *DiskStore) Open(_ context.Context, k Key) (io.ReadCloser, error) {
	p, err := s.resolve(k.Part, k.DocType, k.File)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	st, err := fh.Stat()
	if err != nil || !st.Mode().IsRegular() {
		fh.Close()
		return nil, ErrNotFound
	}
	return fh, nil
}

func (s *DiskStore) Delete(_ context.Context, k Key) error {
	p, err := s.resolve(k.Part, k.DocType, k.File)
	if err != nil {
		return err
	}
	st, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !st.Mode().IsRegular()) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return os.Remove(p)
}

func (s *DiskStore) DeleteFolder(ctx context.Context, f Folder) (int, error) {
	names, err := s.List(ctx, f)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, name := range names {
		if err := s.Delete(ctx, Key{Part: f.Part, DocType: f.DocType, File: name}); err != nil && !errors.Is(err, ErrNotFound) {
			return n, err
		}
		n++
	}
	return n, nil
}
