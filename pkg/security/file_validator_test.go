package security_test

import (
	"testing"

	"candidate-search-backend/pkg/security"

	"github.com/stretchr/testify/assert"
)

func testPolicy() security.UploadPolicy {
	return security.UploadPolicy{
		MaxFileSize: 1000,
		AllowedExtensions: map[string][]string{
			"Documents": {".pdf", "docx"},
			"Images":    {".PNG"},
		},
	}
}

func TestIsExtensionAllowed(t *testing.T) {
	policy := testPolicy()

	t.Run("matches with or without a leading dot", func(t *testing.T) {
		assert.True(t, policy.IsExtensionAllowed(".pdf"))
		assert.True(t, policy.IsExtensionAllowed("pdf"))
		assert.True(t, policy.IsExtensionAllowed(".docx"))
	})

	t.Run("matches case-insensitively across groups", func(t *testing.T) {
		assert.True(t, policy.IsExtensionAllowed(".PDF"))
		assert.True(t, policy.IsExtensionAllowed("png"))
	})

	t.Run("rejects unknown and empty extensions", func(t *testing.T) {
		assert.False(t, policy.IsExtensionAllowed(".exe"))
		assert.False(t, policy.IsExtensionAllowed(""))
	})
}

func TestValidateUpload(t *testing.T) {
	policy := testPolicy()

	t.Run("accepts an allowed file within the size limit", func(t *testing.T) {
		res := policy.ValidateUpload("resume.pdf", 500)
		assert.True(t, res.Valid)
		assert.Equal(t, ".pdf", res.Extension)
	})

	t.Run("rejects a disallowed extension", func(t *testing.T) {
		res := policy.ValidateUpload("malware.exe", 500)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "File type not allowed")
	})

	t.Run("rejects an oversized file", func(t *testing.T) {
		res := policy.ValidateUpload("resume.pdf", 1001)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "maximum allowed file size")
	})

	t.Run("zero max size disables the size check", func(t *testing.T) {
		unlimited := security.UploadPolicy{AllowedExtensions: policy.AllowedExtensions}
		res := unlimited.ValidateUpload("resume.pdf", 1<<30)
		assert.True(t, res.Valid)
	})
}
