package postgres

import (
	"context"
	"errors"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, password_hash, email_confirmed, role, first_name,
	COALESCE(last_name, ''), COALESCE(patronymic, ''), COALESCE(date_of_birth, 'epoch'::timestamptz),
	preferred_language, COALESCE(description, ''), lockout_until,
	is_deleted, deleted_at, created_at, updated_at`

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, email_confirmed, role, first_name,
	          last_name, patronymic, date_of_birth, preferred_language, description, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.EmailConfirmed, user.Role, user.FirstName,
		user.LastName, user.Patronymic, user.DateOfBirth, user.PreferredLanguage, user.Description,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return err
	}
	return nil
}

func (r *userRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.EmailConfirmed, &user.Role, &user.FirstName,
		&user.LastName, &user.Patronymic, &user.DateOfBirth,
		&user.PreferredLanguage, &user.Description, &user.LockoutUntil,
		&user.IsDeleted, &user.DeletedAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET email = $2, password_hash = $3, email_confirmed = $4, role = $5,
	          first_name = $6, last_name = $7, patronymic = $8, date_of_birth = $9,
	          preferred_language = $10, description = $11, lockout_until = $12,
	          is_deleted = $13, deleted_at = $14, updated_at = NOW()
	          WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.EmailConfirmed, user.Role,
		user.FirstName, user.LastName, user.Patronymic, user.DateOfBirth,
		user.PreferredLanguage, user.Description, user.LockoutUntil,
		user.IsDeleted, user.DeletedAt,
	)
	return err
}
