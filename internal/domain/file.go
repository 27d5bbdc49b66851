package domain

import (
	"context"
	"io"
	"time"

	"candidate-search-backend/pkg/result"

	"github.com/google/uuid"
)

type File struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        FileType
	StoragePath string // relative to the web root, forward slashes
	Description string
	IsDeleted   bool
	DeletedAt   *time.Time
	UploadedAt  time.Time
	UpdatedAt   time.Time
}

type FileDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        FileType  `json:"type"`
	StoragePath string    `json:"storage_path"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FileUpload is an incoming upload: metadata plus the content stream.
type FileUpload struct {
	Name        string
	Size        int64
	Type        FileType
	Description string
	Content     io.Reader
}

// FileUpdate carries a metadata-only update. Empty Name/Description mean
// "leave unchanged"; Type is always applied.
type FileUpdate struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        FileType  `json:"type"`
	Description string    `json:"description"`
}

type FileRepository interface {
	Create(ctx context.Context, file *File) error
	// GetByIDAndUser returns nil for missing rows and rows owned by someone
	// else alike.
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*File, error)
	Update(ctx context.Context, file *File) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]File, error)
	ListByUserAndType(ctx context.Context, userID uuid.UUID, fileType FileType) ([]File, error)
}

type FileService interface {
	// Add validates, writes the content to disk and records the metadata
	// row. The error return is reserved for upload-directory creation
	// failure, which indicates a broken deployment rather than a bad
	// request.
	Add(ctx context.Context, userID uuid.UUID, upload FileUpload) (result.Result[FileDTO], error)
	Update(ctx context.Context, userID uuid.UUID, update FileUpdate) result.Result[FileDTO]
	Delete(ctx context.Context, userID, fileID uuid.UUID) result.Empty
	GetByUserID(ctx context.Context, userID uuid.UUID) result.Result[[]FileDTO]
	GetByUserIDAndType(ctx context.Context, userID uuid.UUID, fileType FileType) result.Result[[]FileDTO]
}
