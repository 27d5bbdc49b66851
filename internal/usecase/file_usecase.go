package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/internal/mapper"
	"candidate-search-backend/pkg/avatar"
	"candidate-search-backend/pkg/logger"
	"candidate-search-backend/pkg/result"
	"candidate-search-backend/pkg/security"

	"github.com/google/uuid"
)

const msgFileNotFound = "File not found or access denied."

type fileUsecase struct {
	fileRepo domain.FileRepository
	policy   security.UploadPolicy
	webRoot  string
}

func NewFileUsecase(fileRepo domain.FileRepository, policy security.UploadPolicy, webRoot string) domain.FileService {
	return &fileUsecase{fileRepo: fileRepo, policy: policy, webRoot: webRoot}
}

// Add validates the upload, writes the content under the web root and records
// the metadata row. Failure to create the per-user upload directory is
// returned as an error because it means the deployment is broken; every other
// problem comes back as a failed result.
func (u *fileUsecase) Add(ctx context.Context, userID uuid.UUID, upload domain.FileUpload) (result.Result[domain.FileDTO], error) {
	if ctx.Err() != nil {
		return result.Failure[domain.FileDTO](msgOperationCancelled), nil
	}

	validated := u.policy.ValidateUpload(upload.Name, upload.Size)
	if !validated.Valid {
		return result.Failure[domain.FileDTO](validated.Error), nil
	}

	userDir := filepath.Join(u.webRoot, "Uploads", userID.String())
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return result.Result[domain.FileDTO]{}, fmt.Errorf("failed to create upload directory %s: %w", userDir, err)
	}

	fileID := uuid.New()
	diskName := fileID.String() + validated.Extension
	diskPath := filepath.Join(userDir, diskName)

	content := upload.Content
	if upload.Type == domain.FileProfileAvatar {
		scaled, err := u.maybeThumbnail(upload.Content)
		if err != nil {
			logger.Log.Error("failed to read avatar upload", "user_id", userID, "error", err)
			return result.Failure[domain.FileDTO]("An error occurred during file upload."), nil
		}
		content = scaled
	}

	out, err := os.Create(diskPath)
	if err != nil {
		logger.Log.Error("failed to create upload file", "path", diskPath, "error", err)
		return result.Failure[domain.FileDTO]("An error occurred during file upload."), nil
	}
	_, copyErr := io.Copy(out, content)
	closeErr := out.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(diskPath)
		logger.Log.Error("failed to write upload content", "path", diskPath, "copy_error", copyErr, "close_error", closeErr)
		return result.Failure[domain.FileDTO]("An error occurred during file upload."), nil
	}
	if ctx.Err() != nil {
		os.Remove(diskPath)
		return result.Failure[domain.FileDTO](msgOperationCancelled), nil
	}

	now := time.Now()
	file := &domain.File{
		ID:          fileID,
		UserID:      userID,
		Name:        upload.Name,
		Type:        upload.Type,
		StoragePath: path.Join("Uploads", userID.String(), diskName),
		Description: upload.Description,
		UploadedAt:  now,
		UpdatedAt:   now,
	}

	if err := u.fileRepo.Create(ctx, file); err != nil {
		// The disk write and the metadata row are not atomic; drop the
		// orphaned file so the next attempt starts clean.
		os.Remove(diskPath)
		logger.Log.Error("failed to record uploaded file", "user_id", userID, "error", err)
		return result.Failure[domain.FileDTO]("An error occurred during file upload."), nil
	}

	return result.Success(mapper.FileToDTO(file)), nil
}

// maybeThumbnail downsizes avatar images. When the content is not a decodable
// image the original bytes pass through untouched; a failed read of the
// upload stream is the caller's problem.
func (u *fileUsecase) maybeThumbnail(content io.Reader) (io.Reader, error) {
	raw, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	var scaled bytes.Buffer
	if err := avatar.Thumbnail(bytes.NewReader(raw), &scaled); err != nil {
		logger.Log.Warn("avatar thumbnail skipped", "error", err)
		return bytes.NewReader(raw), nil
	}
	return &scaled, nil
}

func (u *fileUsecase) Update(ctx context.Context, userID uuid.UUID, update domain.FileUpdate) result.Result[domain.FileDTO] {
	if ctx.Err() != nil {
		return result.Failure[domain.FileDTO](msgOperationCancelled)
	}
	if update.ID == uuid.Nil {
		return result.Failure[domain.FileDTO]("File ID must be provided for update.")
	}

	file, err := u.fileRepo.GetByIDAndUser(ctx, update.ID, userID)
	if err != nil {
		logger.Log.Error("failed to load file", "file_id", update.ID, "error", err)
		return result.Failure[domain.FileDTO]("An error occurred during file metadata update.")
	}
	if file == nil || file.IsDeleted {
		return result.Failure[domain.FileDTO](msgFileNotFound)
	}
	if ctx.Err() != nil {
		return result.Failure[domain.FileDTO](msgOperationCancelled)
	}

	if update.Name != "" {
		file.Name = update.Name
	}
	if update.Description != "" {
		file.Description = update.Description
	}
	file.Type = update.Type
	file.UpdatedAt = time.Now()

	if err := u.fileRepo.Update(ctx, file); err != nil {
		logger.Log.Error("failed to update file metadata", "file_id", update.ID, "error", err)
		return result.Failure[domain.FileDTO]("An error occurred during file metadata update.")
	}
	return result.Success(mapper.FileToDTO(file))
}

// Delete soft-deletes the metadata row and removes the disk artifact. Disk
// removal is best-effort: the DB flag is persisted even when the file is
// already gone or the filesystem refuses. Deleting an already deleted file
// succeeds without changing its timestamps.
func (u *fileUsecase) Delete(ctx context.Context, userID, fileID uuid.UUID) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	file, err := u.fileRepo.GetByIDAndUser(ctx, fileID, userID)
	if err != nil {
		logger.Log.Error("failed to load file for deletion", "file_id", fileID, "error", err)
		return result.Fail("A server error occurred while deleting the file.")
	}
	if file == nil {
		return result.Fail(msgFileNotFound)
	}
	if file.IsDeleted {
		return result.Ok()
	}
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	now := time.Now()
	file.IsDeleted = true
	file.DeletedAt = &now
	file.UpdatedAt = now

	if rmErr := os.Remove(filepath.Join(u.webRoot, filepath.FromSlash(file.StoragePath))); rmErr != nil && !os.IsNotExist(rmErr) {
		logger.Log.Warn("failed to remove deleted file from disk", "file_id", fileID, "path", file.StoragePath, "error", rmErr)
	}

	if err := u.fileRepo.Update(ctx, file); err != nil {
		logger.Log.Error("failed to soft-delete file", "file_id", fileID, "error", err)
		return result.Fail("A server error occurred while deleting the file.")
	}
	return result.Ok()
}

func (u *fileUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) result.Result[[]domain.FileDTO] {
	if ctx.Err() != nil {
		return result.Failure[[]domain.FileDTO](msgOperationCancelled)
	}

	files, err := u.fileRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Error("failed to list files", "user_id", userID, "error", err)
		return result.Failure[[]domain.FileDTO]("An error occurred while fetching files.")
	}
	return result.Success(mapper.FilesToDTO(files))
}

func (u *fileUsecase) GetByUserIDAndType(ctx context.Context, userID uuid.UUID, fileType domain.FileType) result.Result[[]domain.FileDTO] {
	if ctx.Err() != nil {
		return result.Failure[[]domain.FileDTO](msgOperationCancelled)
	}

	files, err := u.fileRepo.ListByUserAndType(ctx, userID, fileType)
	if err != nil {
		logger.Log.Error("failed to list files by type", "user_id", userID, "type", fileType, "error", err)
		return result.Failure[[]domain.FileDTO]("An error occurred while fetching files.")
	}
	return result.Success(mapper.FilesToDTO(files))
}
