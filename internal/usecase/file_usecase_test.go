package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/internal/usecase"
	"candidate-search-backend/pkg/security"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testUploadPolicy() security.UploadPolicy {
	return security.UploadPolicy{
		MaxFileSize: 1000,
		AllowedExtensions: map[string][]string{
			"Documents": {".pdf"},
		},
	}
}

func TestFileAdd(t *testing.T) {
	t.Run("valid upload writes the file and records one row", func(t *testing.T) {
		repo := new(MockFileRepo)
		webRoot := t.TempDir()
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), webRoot)
		userID := uuid.New()

		var stored *domain.File
		repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.File)
		}).Return(nil)

		res, err := svc.Add(context.Background(), userID, domain.FileUpload{
			Name:    "resume.pdf",
			Size:    500,
			Type:    domain.FileResume,
			Content: strings.NewReader(strings.Repeat("x", 500)),
		})

		assert.NoError(t, err)
		assert.True(t, res.IsSuccess())
		assert.False(t, stored.IsDeleted)

		onDisk := filepath.Join(webRoot, "Uploads", userID.String(), stored.ID.String()+".pdf")
		info, statErr := os.Stat(onDisk)
		assert.NoError(t, statErr)
		assert.EqualValues(t, 500, info.Size())
	})

	t.Run("disallowed extension creates neither row nor file", func(t *testing.T) {
		repo := new(MockFileRepo)
		webRoot := t.TempDir()
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), webRoot)
		userID := uuid.New()

		res, err := svc.Add(context.Background(), userID, domain.FileUpload{
			Name:    "malware.exe",
			Size:    500,
			Content: strings.NewReader("MZ"),
		})

		assert.NoError(t, err)
		assert.True(t, res.IsFailure())
		assert.Contains(t, res.Error(), "not allowed")
		repo.AssertNotCalled(t, "Create")

		_, statErr := os.Stat(filepath.Join(webRoot, "Uploads"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("oversized upload is rejected before touching disk", func(t *testing.T) {
		repo := new(MockFileRepo)
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), t.TempDir())

		res, err := svc.Add(context.Background(), uuid.New(), domain.FileUpload{
			Name:    "big.pdf",
			Size:    2000,
			Content: strings.NewReader(""),
		})

		assert.NoError(t, err)
		assert.True(t, res.IsFailure())
		assert.Contains(t, res.Error(), "maximum allowed file size")
	})

	t.Run("unwritable web root is an error, not a failed result", func(t *testing.T) {
		repo := new(MockFileRepo)
		blocked := filepath.Join(t.TempDir(), "occupied")
		assert.NoError(t, os.WriteFile(blocked, []byte("a plain file"), 0o644))
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), filepath.Join(blocked, "webroot"))

		_, err := svc.Add(context.Background(), uuid.New(), domain.FileUpload{
			Name:    "resume.pdf",
			Size:    10,
			Content: strings.NewReader("0123456789"),
		})

		assert.Error(t, err)
	})

	t.Run("avatar upload with a broken stream fails without writing", func(t *testing.T) {
		repo := new(MockFileRepo)
		webRoot := t.TempDir()
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), webRoot)
		userID := uuid.New()

		res, err := svc.Add(context.Background(), userID, domain.FileUpload{
			Name:    "avatar.pdf",
			Size:    10,
			Type:    domain.FileProfileAvatar,
			Content: iotest.ErrReader(errors.New("stream reset")),
		})

		assert.NoError(t, err)
		assert.True(t, res.IsFailure())
		repo.AssertNotCalled(t, "Create")

		entries, readErr := os.ReadDir(filepath.Join(webRoot, "Uploads", userID.String()))
		assert.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("metadata insert failure removes the orphaned file", func(t *testing.T) {
		repo := new(MockFileRepo)
		webRoot := t.TempDir()
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), webRoot)
		userID := uuid.New()

		repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		res, err := svc.Add(context.Background(), userID, domain.FileUpload{
			Name:    "resume.pdf",
			Size:    10,
			Content: strings.NewReader("0123456789"),
		})

		assert.NoError(t, err)
		assert.True(t, res.IsFailure())

		entries, readErr := os.ReadDir(filepath.Join(webRoot, "Uploads", userID.String()))
		assert.NoError(t, readErr)
		assert.Empty(t, entries)
	})
}

func TestFileUpdate(t *testing.T) {
	t.Run("empty name and description are left unchanged", func(t *testing.T) {
		repo := new(MockFileRepo)
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), t.TempDir())
		userID := uuid.New()

		file := &domain.File{
			ID:          uuid.New(),
			UserID:      userID,
			Name:        "resume.pdf",
			Type:        domain.FileResume,
			Description: "current version",
		}
		repo.On("GetByIDAndUser", mock.Anything, file.ID, userID).Return(file, nil)
		repo.On("Update", mock.Anything, file).Return(nil)

		res := svc.Update(context.Background(), userID, domain.FileUpdate{
			ID:   file.ID,
			Type: domain.FileCoverLetter,
		})

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "resume.pdf", res.Value().Name)
		assert.Equal(t, "current version", res.Value().Description)
		assert.Equal(t, domain.FileCoverLetter, res.Value().Type)
	})
}

func TestFileDelete(t *testing.T) {
	t.Run("delete removes the uploaded file from disk", func(t *testing.T) {
		repo := new(MockFileRepo)
		webRoot := t.TempDir()
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), webRoot)
		userID := uuid.New()

		var stored *domain.File
		repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.File)
		}).Return(nil)

		res, err := svc.Add(context.Background(), userID, domain.FileUpload{
			Name:    "resume.pdf",
			Size:    10,
			Type:    domain.FileResume,
			Content: strings.NewReader("0123456789"),
		})
		assert.NoError(t, err)
		assert.True(t, res.IsSuccess())

		repo.On("GetByIDAndUser", mock.Anything, stored.ID, userID).Return(stored, nil)
		repo.On("Update", mock.Anything, stored).Return(nil)

		del := svc.Delete(context.Background(), userID, stored.ID)

		assert.True(t, del.IsSuccess())
		assert.True(t, stored.IsDeleted)
		_, statErr := os.Stat(filepath.Join(webRoot, "Uploads", userID.String(), stored.ID.String()+".pdf"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing disk artifact does not block the soft delete", func(t *testing.T) {
		repo := new(MockFileRepo)
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), t.TempDir())
		userID := uuid.New()

		file := &domain.File{
			ID:          uuid.New(),
			UserID:      userID,
			StoragePath: "Uploads/" + userID.String() + "/never-written.pdf",
		}
		repo.On("GetByIDAndUser", mock.Anything, file.ID, userID).Return(file, nil)
		repo.On("Update", mock.Anything, file).Return(nil)

		res := svc.Delete(context.Background(), userID, file.ID)

		assert.True(t, res.IsSuccess())
		assert.True(t, file.IsDeleted)
	})

	t.Run("repeated delete keeps the original timestamp", func(t *testing.T) {
		repo := new(MockFileRepo)
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), t.TempDir())
		userID := uuid.New()

		deletedAt := time.Now().Add(-time.Hour)
		file := &domain.File{
			ID:        uuid.New(),
			UserID:    userID,
			IsDeleted: true,
			DeletedAt: &deletedAt,
		}
		repo.On("GetByIDAndUser", mock.Anything, file.ID, userID).Return(file, nil)

		res := svc.Delete(context.Background(), userID, file.ID)

		assert.True(t, res.IsSuccess())
		assert.Equal(t, deletedAt, *file.DeletedAt)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("foreign file reads as not found", func(t *testing.T) {
		repo := new(MockFileRepo)
		svc := usecase.NewFileUsecase(repo, testUploadPolicy(), t.TempDir())

		repo.On("GetByIDAndUser", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		res := svc.Delete(context.Background(), uuid.New(), uuid.New())

		assert.True(t, res.IsFailure())
		assert.Equal(t, "File not found or access denied.", res.Error())
	})
}
