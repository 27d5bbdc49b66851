package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeNewsRepo keeps posts in memory with the same total ordering the SQL
// layer guarantees: created_at DESC, id DESC.
type fakeNewsRepo struct {
	posts []domain.NewsPost
}

func (f *fakeNewsRepo) sorted() []domain.NewsPost {
	out := make([]domain.NewsPost, len(f.posts))
	copy(out, f.posts)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out
}

func (f *fakeNewsRepo) Create(ctx context.Context, post *domain.NewsPost) error {
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakeNewsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.NewsPost, error) {
	for i := range f.posts {
		if f.posts[i].ID == id {
			p := f.posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeNewsRepo) Update(ctx context.Context, post *domain.NewsPost) (bool, error) {
	for i := range f.posts {
		if f.posts[i].ID == post.ID {
			f.posts[i] = *post
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNewsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeNewsRepo) Page(ctx context.Context, limit, offset int) ([]domain.NewsPost, error) {
	ordered := f.sorted()
	if offset >= len(ordered) {
		return []domain.NewsPost{}, nil
	}
	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[offset:end], nil
}

func (f *fakeNewsRepo) Count(ctx context.Context) (int, error) {
	return len(f.posts), nil
}

func (f *fakeNewsRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	ordered := f.sorted()
	ids := make([]uuid.UUID, len(ordered))
	for i, p := range ordered {
		ids[i] = p.ID
	}
	return ids, nil
}

func seedNews(t *testing.T, repo *fakeNewsRepo, n int) {
	t.Helper()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		repo.posts = append(repo.posts, domain.NewsPost{
			ID:        uuid.New(),
			Author:    "Admin",
			Title:     fmt.Sprintf("post %d", i),
			Body:      "body",
			Level:     domain.NewsUpdate,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func TestNewsAdd(t *testing.T) {
	t.Run("a caller-supplied id is kept", func(t *testing.T) {
		repo := &fakeNewsRepo{}
		svc := usecase.NewNewsUsecase(repo)

		id := uuid.New()
		res := svc.Add(context.Background(), domain.NewsPostDTO{ID: id, Title: "release", Body: "notes"})

		assert.True(t, res.IsSuccess())
		stored, _ := repo.GetByID(context.Background(), id)
		if assert.NotNil(t, stored) {
			assert.Equal(t, "release", stored.Title)
		}
	})

	t.Run("an id is generated when the caller supplies none", func(t *testing.T) {
		repo := &fakeNewsRepo{}
		svc := usecase.NewNewsUsecase(repo)

		res := svc.Add(context.Background(), domain.NewsPostDTO{Title: "release", Body: "notes"})

		assert.True(t, res.IsSuccess())
		if assert.Len(t, repo.posts, 1) {
			assert.NotEqual(t, uuid.Nil, repo.posts[0].ID)
		}
	})
}

func TestNewsGetPage(t *testing.T) {
	t.Run("pages concatenate to the full feed without gaps", func(t *testing.T) {
		repo := &fakeNewsRepo{}
		seedNews(t, repo, 25)
		svc := usecase.NewNewsUsecase(repo)

		var collected []uuid.UUID
		for page := 1; ; page++ {
			res := svc.GetPage(context.Background(), page, 10)
			assert.True(t, res.IsSuccess())
			if len(res.Value().Items) == 0 {
				break
			}
			for _, item := range res.Value().Items {
				collected = append(collected, item.ID)
			}
		}

		ids, _ := repo.ListIDs(context.Background())
		assert.Equal(t, ids, collected)
	})

	t.Run("clamps out-of-range page arguments and echoes effective values", func(t *testing.T) {
		repo := &fakeNewsRepo{}
		seedNews(t, repo, 5)
		svc := usecase.NewNewsUsecase(repo)

		res := svc.GetPage(context.Background(), -3, 0)

		assert.True(t, res.IsSuccess())
		assert.Equal(t, 1, res.Value().PageIndex)
		assert.Equal(t, 10, res.Value().PageSize)
		assert.Equal(t, 5, res.Value().TotalCount)
	})

	t.Run("page past the end is an empty success", func(t *testing.T) {
		repo := &fakeNewsRepo{}
		seedNews(t, repo, 5)
		svc := usecase.NewNewsUsecase(repo)

		res := svc.GetPage(context.Background(), 99, 10)

		assert.True(t, res.IsSuccess())
		assert.Empty(t, res.Value().Items)
		assert.Equal(t, 5, res.Value().TotalCount)
	})
}

func TestNewsGetPageIndexContaining(t *testing.T) {
	t.Run("every post is found on the page it reports", func(t *testing.T) {
		repo := &fakeNewsRepo{}
		seedNews(t, repo, 23)
		svc := usecase.NewNewsUsecase(repo)
		const pageSize = 7

		ids, _ := repo.ListIDs(context.Background())
		for _, id := range ids {
			idxRes := svc.GetPageIndexContaining(context.Background(), id, pageSize)
			assert.True(t, idxRes.IsSuccess())

			pageRes := svc.GetPage(context.Background(), idxRes.Value(), pageSize)
			assert.True(t, pageRes.IsSuccess())

			found := false
			for _, item := range pageRes.Value().Items {
				if item.ID == id {
					found = true
					break
				}
			}
			assert.True(t, found, "post %s missing from page %d", id, idxRes.Value())
		}
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		repo := &fakeNewsRepo{}
		seedNews(t, repo, 3)
		svc := usecase.NewNewsUsecase(repo)

		res := svc.GetPageIndexContaining(context.Background(), uuid.New(), 10)

		assert.True(t, res.IsFailure())
		assert.Contains(t, res.Error(), "not found")
	})
}

func TestNewsUpdate(t *testing.T) {
	t.Run("keeps id and created_at server-owned", func(t *testing.T) {
		repo := &fakeNewsRepo{}
		seedNews(t, repo, 1)
		svc := usecase.NewNewsUsecase(repo)
		original := repo.posts[0]

		res := svc.Update(context.Background(), domain.NewsPostDTO{
			ID:        original.ID,
			Author:    "Admin",
			Title:     "updated title",
			Body:      "updated body",
			Level:     domain.NewsRelease,
			CreatedAt: time.Now(), // must be ignored
		})

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "updated title", repo.posts[0].Title)
		assert.True(t, original.CreatedAt.Equal(repo.posts[0].CreatedAt))
	})

	t.Run("unknown id fails", func(t *testing.T) {
		repo := &fakeNewsRepo{}
		svc := usecase.NewNewsUsecase(repo)

		res := svc.Update(context.Background(), domain.NewsPostDTO{ID: uuid.New(), Title: "x", Body: "y"})

		assert.True(t, res.IsFailure())
	})
}

func TestNewsDelete(t *testing.T) {
	t.Run("deleting a missing id still succeeds", func(t *testing.T) {
		repo := &fakeNewsRepo{}
		svc := usecase.NewNewsUsecase(repo)

		res := svc.Delete(context.Background(), uuid.New())

		assert.True(t, res.IsSuccess())
	})
}
