package postgres

import (
	"context"
	"errors"

	"candidate-search-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recruiterRepository struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepository{db: db}
}

func (r *recruiterRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RecruiterProfile, error) {
	query := `SELECT user_id, company_name, job_title, COALESCE(bio, ''),
	          COALESCE(company_website, ''), COALESCE(industry, '')
	          FROM recruiter_profiles WHERE user_id = $1`

	var p domain.RecruiterProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.CompanyName, &p.JobTitle, &p.Bio, &p.CompanyWebsite, &p.Industry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *recruiterRepository) Upsert(ctx context.Context, profile *domain.RecruiterProfile) error {
	query := `
		INSERT INTO recruiter_profiles (user_id, company_name, job_title, bio, company_website, industry)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			job_title = EXCLUDED.job_title,
			bio = EXCLUDED.bio,
			company_website = EXCLUDED.company_website,
			industry = EXCLUDED.industry`

	_, err := r.db.Exec(ctx, query,
		profile.UserID, profile.CompanyName, profile.JobTitle,
		profile.Bio, profile.CompanyWebsite, profile.Industry,
	)
	return err
}

func (r *recruiterRepository) AddFavorite(ctx context.Context, fav *domain.Favorite) error {
	query := `
		INSERT INTO recruiter_candidate_favorites
			(recruiter_profile_id, candidate_profile_id, added_at, recruiter_notes)
		VALUES ($1, $2, NOW(), $3)
		ON CONFLICT (recruiter_profile_id, candidate_profile_id) DO UPDATE SET
			recruiter_notes = EXCLUDED.recruiter_notes`

	_, err := r.db.Exec(ctx, query, fav.RecruiterProfileID, fav.CandidateProfileID, fav.RecruiterNotes)
	return err
}

func (r *recruiterRepository) RemoveFavorite(ctx context.Context, recruiterID, candidateID uuid.UUID) (bool, error) {
	query := `DELETE FROM recruiter_candidate_favorites
	          WHERE recruiter_profile_id = $1 AND candidate_profile_id = $2`

	tag, err := r.db.Exec(ctx, query, recruiterID, candidateID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *recruiterRepository) ListFavorites(ctx context.Context, recruiterID uuid.UUID) ([]domain.Favorite, error) {
	query := `SELECT recruiter_profile_id, candidate_profile_id, added_at, COALESCE(recruiter_notes, '')
	          FROM recruiter_candidate_favorites
	          WHERE recruiter_profile_id = $1
	          ORDER BY added_at DESC`

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []domain.Favorite{}
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.RecruiterProfileID, &f.CandidateProfileID, &f.AddedAt, &f.RecruiterNotes); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}
