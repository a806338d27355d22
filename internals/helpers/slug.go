package helper

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var ErrUnsafePath = errors.New("unsafe path component")

// SafePathComponent normalizes one user-supplied folder/file name segment
// (NFC, trimmed, spaces → "_") and rejects anything that could escape its
// parent directory: empty, "." / "..", separators, NUL, control chars, or
// any ".." sequence.
func SafePathComponent(s string) (string, error) {
	s = norm.NFC.String(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")

	if s == "" || s == "." || s == ".." {
		return "", ErrUnsafePath
	}
	if strings.Contains(s, "..") || strings.ContainsAny(s, `/\:`) {
		return "", ErrUnsafePath
	}
	for _, r := range s {
		if r == 0 || unicode.IsControl(r) {
			return "", ErrUnsafePath
		}
	}
	if len(s) > 200 {
		return "", ErrUnsafePath
	}
	return s, nil
}
