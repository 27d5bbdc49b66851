package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// UploadPolicy is the configured file-upload constraint set: a maximum size
// and an allow-list of extensions grouped by category.
type UploadPolicy struct {
	MaxFileSize       int64
	AllowedExtensions map[string][]string
}

// FileValidationResult contains the outcome of upload validation.
type FileValidationResult struct {
	Valid     bool
	Extension string // normalized: lowercase, leading dot
	Error     string
}

// NormalizeExtension lowercases ext and guarantees a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// IsExtensionAllowed checks ext against every configured group,
// case-insensitively and regardless of a leading dot.
func (p UploadPolicy) IsExtensionAllowed(ext string) bool {
	normalized := NormalizeExtension(ext)
	if normalized == "" {
		return false
	}
	for _, group := range p.AllowedExtensions {
		for _, allowed := range group {
			if NormalizeExtension(allowed) == normalized {
				return true
			}
		}
	}
	return false
}

// ValidateUpload checks the declared size and the filename extension against
// the policy. It performs no I/O: both failure modes must be rejected before
// anything touches disk or the database.
func (p UploadPolicy) ValidateUpload(filename string, size int64) FileValidationResult {
	result := FileValidationResult{
		Extension: NormalizeExtension(filepath.Ext(filename)),
	}

	if p.MaxFileSize > 0 && size > p.MaxFileSize {
		result.Error = fmt.Sprintf("File: %s exceeds the maximum allowed file size (%d bytes).", filename, p.MaxFileSize)
		return result
	}

	if !p.IsExtensionAllowed(result.Extension) {
		result.Error = fmt.Sprintf("File: %s, File type not allowed (%s)", filename, result.Extension)
		return result
	}

	result.Valid = true
	return result
}
