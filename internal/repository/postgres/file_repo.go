package postgres

import (
	"context"
	"errors"

	"candidate-search-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type fileRepo struct {
	db *pgxpool.Pool
}

func NewFileRepository(db *pgxpool.Pool) domain.FileRepository {
	return &fileRepo{db: db}
}

const fileColumns = `id, user_id, name, type, storage_path, COALESCE(description, ''),
	is_deleted, deleted_at, uploaded_at, updated_at`

func (r *fileRepo) Create(ctx context.Context, file *domain.File) error {
	query := `INSERT INTO files (id, user_id, name, type, storage_path, description, uploaded_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	_, err := r.db.Exec(ctx, query,
		file.ID, file.UserID, file.Name, file.Type, file.StoragePath, file.Description, file.UploadedAt,
	)
	return err
}

func (r *fileRepo) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND user_id = $2`
	var f domain.File
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&f.ID, &f.UserID, &f.Name, &f.Type, &f.StoragePath, &f.Description,
		&f.IsDeleted, &f.DeletedAt, &f.UploadedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *fileRepo) Update(ctx context.Context, file *domain.File) error {
	query := `UPDATE files SET name = $3, type = $4, description = $5,
	          is_deleted = $6, deleted_at = $7, updated_at = $8
	          WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(ctx, query,
		file.ID, file.UserID, file.Name, file.Type, file.Description,
		file.IsDeleted, file.DeletedAt, file.UpdatedAt,
	)
	return err
}

func (r *fileRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files
	          WHERE user_id = $1 AND NOT is_deleted ORDER BY uploaded_at DESC`
	return r.list(ctx, query, userID)
}

func (r *fileRepo) ListByUserAndType(ctx context.Context, userID uuid.UUID, fileType domain.FileType) ([]domain.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files
	          WHERE user_id = $1 AND type = $2 AND NOT is_deleted ORDER BY uploaded_at DESC`
	return r.list(ctx, query, userID, fileType)
}

func (r *fileRepo) list(ctx context.Context, query string, args ...any) ([]domain.File, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := []domain.File{}
	for rows.Next() {
		var f domain.File
		err := rows.Scan(
			&f.ID, &f.UserID, &f.Name, &f.Type, &f.StoragePath, &f.Description,
			&f.IsDeleted, &f.DeletedAt, &f.UploadedAt, &f.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
