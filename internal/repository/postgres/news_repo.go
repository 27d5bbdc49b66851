package postgres

import (
	"context"
	"errors"

	"candidate-search-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type newsRepo struct {
	db *pgxpool.Pool
}

func NewNewsRepository(db *pgxpool.Pool) domain.NewsRepository {
	return &newsRepo{db: db}
}

// newsOrdering is the total ordering every listing shares. The secondary key
// breaks ties deterministically when timestamps collide.
const newsOrdering = `ORDER BY created_at DESC, id DESC`

func (r *newsRepo) Create(ctx context.Context, post *domain.NewsPost) error {
	query := `INSERT INTO news_posts (id, author, title, body, level, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		post.ID, post.Author, post.Title, post.Body, post.Level, post.CreatedAt,
	)
	return err
}

func (r *newsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.NewsPost, error) {
	query := `SELECT id, author, title, body, level, created_at FROM news_posts WHERE id = $1`
	var p domain.NewsPost
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Author, &p.Title, &p.Body, &p.Level, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *newsRepo) Update(ctx context.Context, post *domain.NewsPost) (bool, error) {
	query := `UPDATE news_posts SET author = $2, title = $3, body = $4, level = $5 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, post.ID, post.Author, post.Title, post.Body, post.Level)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *newsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM news_posts WHERE id = $1`, id)
	return err
}

func (r *newsRepo) Page(ctx context.Context, limit, offset int) ([]domain.NewsPost, error) {
	query := `SELECT id, author, title, body, level, created_at FROM news_posts ` +
		newsOrdering + ` LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []domain.NewsPost{}
	for rows.Next() {
		var p domain.NewsPost
		if err := rows.Scan(&p.ID, &p.Author, &p.Title, &p.Body, &p.Level, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *newsRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news_posts`).Scan(&count)
	return count, err
}

func (r *newsRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM news_posts `+newsOrdering)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
