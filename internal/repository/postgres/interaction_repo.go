package postgres

import (
	"context"
	"errors"

	"candidate-search-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const interactionColumns = `id, recruiter_id, candidate_id, status, sent_date,
	COALESCE(recruiter_invitation_body, ''), candidate_action,
	candidate_response_date, COALESCE(candidate_action_reason, '')`

type interactionRepository struct {
	db *pgxpool.Pool
}

func NewInteractionRepository(db *pgxpool.Pool) domain.InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, in *domain.Interaction) error {
	query := `
		INSERT INTO recruiter_interactions
			(id, recruiter_id, candidate_id, status, sent_date, recruiter_invitation_body,
			 candidate_action, candidate_response_date, candidate_action_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		in.ID, in.RecruiterID, in.CandidateID, in.Status, in.SentDate,
		in.InvitationBody, in.CandidateAction, in.CandidateResponseDate, in.CandidateActionReason,
	)
	return err
}

func (r *interactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Interaction, error) {
	query := `SELECT ` + interactionColumns + ` FROM recruiter_interactions WHERE id = $1`

	in, err := scanInteraction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return in, nil
}

func (r *interactionRepository) Update(ctx context.Context, in *domain.Interaction) error {
	query := `
		UPDATE recruiter_interactions SET
			status = $2,
			sent_date = $3,
			recruiter_invitation_body = $4,
			candidate_action = $5,
			candidate_response_date = $6,
			candidate_action_reason = $7
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query,
		in.ID, in.Status, in.SentDate, in.InvitationBody,
		in.CandidateAction, in.CandidateResponseDate, in.CandidateActionReason,
	)
	return err
}

func (r *interactionRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]domain.Interaction, error) {
	query := `SELECT ` + interactionColumns + `
	          FROM recruiter_interactions WHERE recruiter_id = $1 ORDER BY sent_date DESC`
	return r.list(ctx, query, recruiterID)
}

func (r *interactionRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Interaction, error) {
	query := `SELECT ` + interactionColumns + `
	          FROM recruiter_interactions WHERE candidate_id = $1 ORDER BY sent_date DESC`
	return r.list(ctx, query, candidateID)
}

func (r *interactionRepository) list(ctx context.Context, query string, id uuid.UUID) ([]domain.Interaction, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interactions := []domain.Interaction{}
	for rows.Next() {
		in, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		interactions = append(interactions, *in)
	}
	return interactions, rows.Err()
}

func scanInteraction(row pgx.Row) (*domain.Interaction, error) {
	var in domain.Interaction
	err := row.Scan(
		&in.ID, &in.RecruiterID, &in.CandidateID, &in.Status, &in.SentDate,
		&in.InvitationBody, &in.CandidateAction, &in.CandidateResponseDate, &in.CandidateActionReason,
	)
	if err != nil {
		return nil, err
	}
	return &in, nil
}
