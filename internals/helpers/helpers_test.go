package helper

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestSafePathComponent(t *testing.T) {
	ok := map[string]string{
		"P-100":           "P-100",
		" Hoja de Ruta ":  "Hoja_de_Ruta",
		"plano rev.2.pdf": "plano_rev.2.pdf",
		"Diseño":          "Diseño",
	}
	for in, want := range ok {
		got, err := SafePathComponent(in)
		if err != nil {
			t.Errorf("SafePathComponent(%q) unexpected error %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("SafePathComponent(%q) = %q, want %q", in, got, want)
		}
	}

	bad := []string{"", ".", "..", "../etc", "a/../b", `..\win`, "a/b", `a\b`, "x\x00y", "C:evil", "a..b"}
	for _, in := range bad {
		if _, err := SafePathComponent(in); !errors.Is(err, ErrUnsafePath) {
			t.Errorf("SafePathComponent(%q) should be rejected", in)
		}
	}
}

func TestClassifyMapsStoreErrors(t *testing.T) {
	if !IsKind(Classify(gorm.ErrRecordNotFound, "locker"), KindNotFound) {
		t.Error("record not found should map to NotFound")
	}
	if !IsKind(Classify(fmt.Errorf("wrap: %w", gorm.ErrDuplicatedKey), "part"), KindConflict) {
		t.Error("duplicated key should map to Conflict")
	}
	if !IsKind(Classify(errors.New("disk I/O error"), "part"), KindStorage) {
		t.Error("unknown errors should map to Storage")
	}
	ve := ValidationErr("bad")
	if Classify(ve, "x") != ve {
		t.Error("AppError should pass through unchanged")
	}
	if Classify(nil, "x") != nil {
		t.Error("nil stays nil")
	}
}

func TestAppErrorStatus(t *testing.T) {
	cases := map[ErrorKind]int{
		KindValidation: 400,
		KindNotFound:   404,
		KindConflict:   409,
		KindForbidden:  403,
		KindStorage:    500,
	}
	for kind, want := range cases {
		if got := (&AppError{Kind: kind}).Status(); got != want {
			t.Errorf("kind %d: status %d, want %d", kind, got, want)
		}
	}
}
