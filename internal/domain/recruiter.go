package domain

import (
	"context"
	"time"

	"candidate-search-backend/pkg/result"

	"github.com/google/uuid"
)

// RecruiterProfile shares its key with the owning user.
type RecruiterProfile struct {
	UserID         uuid.UUID `json:"user_id"`
	CompanyName    string    `json:"company_name" validate:"required,max=100"`
	JobTitle       string    `json:"job_title" validate:"max=100"`
	Bio            string    `json:"bio,omitempty"`
	CompanyWebsite string    `json:"company_website,omitempty" validate:"omitempty,url,max=255"`
	Industry       string    `json:"industry,omitempty" validate:"max=100"`
}

// Favorite is a recruiter's bookmark of a candidate profile.
type Favorite struct {
	RecruiterProfileID uuid.UUID `json:"recruiter_profile_id"`
	CandidateProfileID uuid.UUID `json:"candidate_profile_id"`
	AddedAt            time.Time `json:"added_at"`
	RecruiterNotes     string    `json:"recruiter_notes,omitempty"`
}

type RecruiterRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*RecruiterProfile, error)
	Upsert(ctx context.Context, profile *RecruiterProfile) error
	AddFavorite(ctx context.Context, fav *Favorite) error
	RemoveFavorite(ctx context.Context, recruiterID, candidateID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, recruiterID uuid.UUID) ([]Favorite, error)
}

type RecruiterProfileService interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) result.Result[RecruiterProfile]
	Upsert(ctx context.Context, userID uuid.UUID, profile RecruiterProfile) result.Result[RecruiterProfile]
	AddFavorite(ctx context.Context, recruiterID uuid.UUID, fav Favorite) result.Empty
	RemoveFavorite(ctx context.Context, recruiterID, candidateID uuid.UUID) result.Empty
	ListFavorites(ctx context.Context, recruiterID uuid.UUID) result.Result[[]Favorite]
}
