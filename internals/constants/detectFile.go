package constants

import (
	"path/filepath"
	"strings"
)

// Document kinds accepted for part documents.
const (
	DocKindPDF   = "pdf"
	DocKindExcel = "excel"
)

// DetectDocumentKind classifies an upload by extension. Only pdf and Excel
// workbooks are accepted.
func DetectDocumentKind(filename string) (string, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return DocKindPDF, true
	case ".xls", ".xlsx":
		return DocKindExcel, true
	default:
		return "", false
	}
}

// DocumentContentType is the MIME type served for a stored document.
func DocumentContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
