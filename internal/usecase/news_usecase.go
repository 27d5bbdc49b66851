package usecase

import (
	"context"
	"fmt"
	"time"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/internal/mapper"
	"candidate-search-backend/pkg/logger"
	"candidate-search-backend/pkg/result"

	"github.com/google/uuid"
)

const (
	defaultNewsPageSize = 10
	maxNewsPageSize     = 100
)

type newsUsecase struct {
	newsRepo domain.NewsRepository
}

func NewNewsUsecase(newsRepo domain.NewsRepository) domain.NewsService {
	return &newsUsecase{newsRepo: newsRepo}
}

func (u *newsUsecase) Add(ctx context.Context, dto domain.NewsPostDTO) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	// Callers may bring their own id; one is generated only when absent.
	id := dto.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	post := &domain.NewsPost{
		ID:        id,
		CreatedAt: time.Now(),
	}
	mapper.ApplyNewsDTO(dto, post)
	if post.Author == "" {
		post.Author = "Admin"
	}
	if post.Level == "" {
		post.Level = domain.NewsUpdate
	}

	if err := u.newsRepo.Create(ctx, post); err != nil {
		logger.Log.Error("failed to create news post", "error", err)
		return result.Fail("A server error occurred while adding the news post.")
	}
	return result.Ok()
}

func (u *newsUsecase) Update(ctx context.Context, dto domain.NewsPostDTO) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	post, err := u.newsRepo.GetByID(ctx, dto.ID)
	if err != nil {
		logger.Log.Error("failed to load news post", "news_id", dto.ID, "error", err)
		return result.Fail("A server error occurred while updating the news post.")
	}
	if post == nil {
		return result.Fail(fmt.Sprintf("News post with id %s not found.", dto.ID))
	}
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	mapper.ApplyNewsDTO(dto, post)

	updated, err := u.newsRepo.Update(ctx, post)
	if err != nil {
		logger.Log.Error("failed to update news post", "news_id", dto.ID, "error", err)
		return result.Fail("A server error occurred while updating the news post.")
	}
	if !updated {
		return result.Fail(fmt.Sprintf("News post with id %s not found.", dto.ID))
	}
	return result.Ok()
}

// Delete removes the post. Deleting an id that does not exist succeeds:
// the desired end state already holds.
func (u *newsUsecase) Delete(ctx context.Context, id uuid.UUID) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	if err := u.newsRepo.Delete(ctx, id); err != nil {
		logger.Log.Error("failed to delete news post", "news_id", id, "error", err)
		return result.Fail("A server error occurred while deleting the news post.")
	}
	return result.Ok()
}

func (u *newsUsecase) GetByID(ctx context.Context, id uuid.UUID) result.Result[domain.NewsPostDTO] {
	if ctx.Err() != nil {
		return result.Failure[domain.NewsPostDTO](msgOperationCancelled)
	}

	post, err := u.newsRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Error("failed to load news post", "news_id", id, "error", err)
		return result.Failure[domain.NewsPostDTO]("A server error occurred while fetching data.")
	}
	if post == nil {
		return result.Failure[domain.NewsPostDTO](fmt.Sprintf("News post with id %s not found.", id))
	}
	return result.Success(mapper.NewsToDTO(post))
}

// GetPage returns one page of the feed in its total ordering. Out-of-range
// page arguments are clamped, and the effective values are echoed back in
// the result.
func (u *newsUsecase) GetPage(ctx context.Context, pageIndex, pageSize int) result.Result[domain.Paged[domain.NewsPostDTO]] {
	if ctx.Err() != nil {
		return result.Failure[domain.Paged[domain.NewsPostDTO]](msgOperationCancelled)
	}

	if pageIndex < 1 {
		pageIndex = 1
	}
	if pageSize < 1 {
		pageSize = defaultNewsPageSize
	}
	if pageSize > maxNewsPageSize {
		pageSize = maxNewsPageSize
	}

	total, err := u.newsRepo.Count(ctx)
	if err != nil {
		logger.Log.Error("failed to count news posts", "error", err)
		return result.Failure[domain.Paged[domain.NewsPostDTO]]("A server error occurred while fetching data.")
	}
	if ctx.Err() != nil {
		return result.Failure[domain.Paged[domain.NewsPostDTO]](msgOperationCancelled)
	}

	offset := (pageIndex - 1) * pageSize
	posts, err := u.newsRepo.Page(ctx, pageSize, offset)
	if err != nil {
		logger.Log.Error("failed to fetch news page", "page_index", pageIndex, "error", err)
		return result.Failure[domain.Paged[domain.NewsPostDTO]]("A server error occurred while fetching data.")
	}

	return result.Success(domain.Paged[domain.NewsPostDTO]{
		Items:      mapper.NewsPostsToDTO(posts),
		TotalCount: total,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
	})
}

// GetPageIndexContaining locates the 1-based page a post lands on for the
// given page size. It walks the materialized id ordering, which is linear in
// the feed length; the feed is small enough that this beats maintaining a
// separate position index.
func (u *newsUsecase) GetPageIndexContaining(ctx context.Context, newsID uuid.UUID, pageSize int) result.Result[int] {
	if ctx.Err() != nil {
		return result.Failure[int](msgOperationCancelled)
	}

	if pageSize < 1 {
		pageSize = defaultNewsPageSize
	}

	ids, err := u.newsRepo.ListIDs(ctx)
	if err != nil {
		logger.Log.Error("failed to list news ids", "error", err)
		return result.Failure[int]("A server error occurred while locating the page index.")
	}

	for pos, id := range ids {
		if id == newsID {
			return result.Success(pos/pageSize + 1)
		}
	}
	return result.Failure[int](fmt.Sprintf("News post with id %s not found.", newsID))
}
