package storage_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mantenimiento_backend/internals/features/parts/documents/storage"
)

func TestNewKeyRejectsTraversal(t *testing.T) {
	bad := [][3]string{
		{"..", "planos", "a.pdf"},
		{"P-100", "../..", "a.pdf"},
		{"P-100", "planos", "../../etc/passwd"},
		{"P-100/x", "planos", "a.pdf"},
		{"P-100", "planos", `..\a.pdf`},
		{"", "planos", "a.pdf"},
		{"P-100", "planos", "a\x00.pdf"},
	}
	for _, in := range bad {
		if k, err := storage.NewKey(in[0], in[1], in[2]); err == nil {
			t.Errorf("NewKey(%q) = %+v, want error", in, k)
		}
	}

	k, err := storage.NewKey(" P-100 ", "hoja de proceso", "plano final.pdf")
	if err != nil {
		t.Fatalf("valid key: %v", err)
	}
	if got := k.Path(); got != "P-100/hoja_de_proceso/plano_final.pdf" {
		t.Fatalf("path = %q", got)
	}
	if got := k.URL(); got != "/archivos/P-100/hoja_de_proceso/plano_final.pdf" {
		t.Fatalf("url = %q", got)
	}
}

func TestDiskStoreRoundTrip(t *testing.T) {
	root := t.TempDir()
	s, err := storage.NewDiskStore(root)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	k, _ := storage.NewKey("P-100", "planos", "a.pdf")

	if err := s.Put(ctx, k, strings.NewReader("%PDF-1.4"), 8, "application/pdf"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "P-100", "planos", "a.pdf")); err != nil {
		t.Fatalf("file not under root: %v", err)
	}

	names, err := s.List(ctx, k.Folder())
	if err != nil || len(names) != 1 || names[0] != "a.pdf" {
		t.Fatalf("list = %v, %v", names, err)
	}

	rc, err := s.Open(ctx, k)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	body, _ := io.ReadAll(rc)
	rc.Close()
	if string(body) != "%PDF-1.4" {
		t.Fatalf("body = %q", body)
	}

	if err := s.Delete(ctx, k); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, k); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
	if _, err := s.Open(ctx, k); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("open deleted = %v, want ErrNotFound", err)
	}
}

func TestListMissingFolderIsEmpty(t *testing.T) {
	s, err := storage.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	f, _ := storage.NewFolder("P-404", "planos")
	names, err := s.List(context.Background(), f)
	if err != nil || len(names) != 0 {
		t.Fatalf("list = %v, %v", names, err)
	}
}
