package domain

import (
	"path/filepath"
	"strings"
)

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypePDF   FileType = "pdf"
)

// ExtractionResult is produced once per request and returned as-is.
type ExtractionResult struct {
	Text     string
	FileType FileType
}

const (
	// MaxUploadSize is the upload ceiling, measured by seeking, not by
	// trusting the declared content length.
	MaxUploadSize = 16 << 20

	// RasterDPI is the resolution used when a PDF page has to be
	// rasterized for recognition.
	RasterDPI = 300

	// EmbeddedTextThreshold is the number of trimmed runes above which
	// embedded PDF text is considered sufficient and rasterization is
	// skipped. Heuristic, kept at this value for compatibility.
	EmbeddedTextThreshold = 50

	// OCRLanguage is the fixed recognition language.
	OCRLanguage = "eng"
)

// AllowedUploadExtensions is the upload allow-set, matched case-insensitively
// against the suffix after the final dot.
var AllowedUploadExtensions = []string{"png", "jpg", "jpeg", "pdf"}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".gif":  true,
}

// IsAllowedUpload reports whether the filename carries an extension from the
// upload allow-set.
func IsAllowedUpload(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedUploadExtensions {
		if ext == "."+allowed {
			return true
		}
	}
	return false
}

// DetectFileType classifies a staged file by its extension. The second
// return value is false for extensions the orchestrator cannot handle.
func DetectFileType(path string) (FileType, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case imageExtensions[ext]:
		return FileTypeImage, true
	case ext == ".pdf":
		return FileTypePDF, true
	default:
		return "", false
	}
}

// MaxUploadSizeMB is reported by the read-only endpoints.
func MaxUploadSizeMB() int {
	return MaxUploadSize / (1024 * 1024)
}
