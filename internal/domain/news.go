package domain

import (
	"context"
	"time"

	"candidate-search-backend/pkg/result"

	"github.com/google/uuid"
)

type NewsPost struct {
	ID        uuid.UUID
	Author    string
	Title     string
	Body      string
	Level     NewsLevel
	CreatedAt time.Time
}

type NewsPostDTO struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title" binding:"required"`
	Body      string    `json:"body" binding:"required"`
	Level     NewsLevel `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// Paged is one page of an ordered listing, echoing back the effective page
// index and size used.
type Paged[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	PageIndex  int `json:"page_index"`
	PageSize   int `json:"page_size"`
}

type NewsRepository interface {
	Create(ctx context.Context, post *NewsPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*NewsPost, error)
	// Update reports whether a row was updated.
	Update(ctx context.Context, post *NewsPost) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Page returns a slice of the total ordering (CreatedAt DESC, ID DESC).
	Page(ctx context.Context, limit, offset int) ([]NewsPost, error)
	Count(ctx context.Context) (int, error)
	// ListIDs returns every post id in the total ordering.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

type NewsService interface {
	Add(ctx context.Context, dto NewsPostDTO) result.Empty
	Update(ctx context.Context, dto NewsPostDTO) result.Empty
	Delete(ctx context.Context, id uuid.UUID) result.Empty
	GetByID(ctx context.Context, id uuid.UUID) result.Result[NewsPostDTO]
	GetPage(ctx context.Context, pageIndex, pageSize int) result.Result[Paged[NewsPostDTO]]
	GetPageIndexContaining(ctx context.Context, newsID uuid.UUID, pageSize int) result.Result[int]
}
