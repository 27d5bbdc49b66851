package postgres

import (
	"context"
	"errors"

	"candidate-search-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	query := `INSERT INTO contacts (id, user_id, type, value, description, is_primary)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		contact.ID, contact.UserID, contact.Type, contact.Value, contact.Description, contact.IsPrimary,
	)
	return err
}

func (r *contactRepo) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Contact, error) {
	query := `SELECT id, user_id, type, value, COALESCE(description, ''), is_primary
	          FROM contacts WHERE id = $1 AND user_id = $2`
	var c domain.Contact
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Type, &c.Value, &c.Description, &c.IsPrimary,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	query := `UPDATE contacts SET type = $3, value = $4, description = $5, is_primary = $6
	          WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(ctx, query,
		contact.ID, contact.UserID, contact.Type, contact.Value, contact.Description, contact.IsPrimary,
	)
	return err
}

func (r *contactRepo) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *contactRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Contact, error) {
	query := `SELECT id, user_id, type, value, COALESCE(description, ''), is_primary
	          FROM contacts WHERE user_id = $1 ORDER BY is_primary DESC, value`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Type, &c.Value, &c.Description, &c.IsPrimary); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
