package usecase

import (
	"context"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/pkg/logger"
	"candidate-search-backend/pkg/result"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type recruiterUsecase struct {
	recruiterRepo domain.RecruiterRepository
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
}

func NewRecruiterUsecase(recruiterRepo domain.RecruiterRepository, candidateRepo domain.CandidateRepository, validate *validator.Validate) domain.RecruiterProfileService {
	return &recruiterUsecase{recruiterRepo: recruiterRepo, candidateRepo: candidateRepo, validate: validate}
}

func (u *recruiterUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) result.Result[domain.RecruiterProfile] {
	if ctx.Err() != nil {
		return result.Failure[domain.RecruiterProfile](msgOperationCancelled)
	}

	profile, err := u.recruiterRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Error("failed to load recruiter profile", "user_id", userID, "error", err)
		return result.Failure[domain.RecruiterProfile]("A server error occurred while fetching the profile.")
	}
	if profile == nil {
		return result.Failure[domain.RecruiterProfile]("Recruiter profile not found.")
	}
	return result.Success(*profile)
}

func (u *recruiterUsecase) Upsert(ctx context.Context, userID uuid.UUID, profile domain.RecruiterProfile) result.Result[domain.RecruiterProfile] {
	if ctx.Err() != nil {
		return result.Failure[domain.RecruiterProfile](msgOperationCancelled)
	}

	profile.UserID = userID

	if err := u.validate.Struct(profile); err != nil {
		return result.Failure[domain.RecruiterProfile](err.Error())
	}

	if err := u.recruiterRepo.Upsert(ctx, &profile); err != nil {
		logger.Log.Error("failed to upsert recruiter profile", "user_id", userID, "error", err)
		return result.Failure[domain.RecruiterProfile]("A server error occurred while saving the profile.")
	}
	return result.Success(profile)
}

// AddFavorite bookmarks a candidate. Re-adding an existing favorite only
// refreshes the notes.
func (u *recruiterUsecase) AddFavorite(ctx context.Context, recruiterID uuid.UUID, fav domain.Favorite) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	candidate, err := u.candidateRepo.GetByUserID(ctx, fav.CandidateProfileID)
	if err != nil {
		logger.Log.Error("failed to check candidate for favorite", "candidate_id", fav.CandidateProfileID, "error", err)
		return result.Fail("A server error occurred while adding the favorite.")
	}
	if candidate == nil {
		return result.Fail("Candidate profile not found.")
	}
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	fav.RecruiterProfileID = recruiterID
	if err := u.recruiterRepo.AddFavorite(ctx, &fav); err != nil {
		logger.Log.Error("failed to add favorite", "recruiter_id", recruiterID, "error", err)
		return result.Fail("A server error occurred while adding the favorite.")
	}
	return result.Ok()
}

func (u *recruiterUsecase) RemoveFavorite(ctx context.Context, recruiterID, candidateID uuid.UUID) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	removed, err := u.recruiterRepo.RemoveFavorite(ctx, recruiterID, candidateID)
	if err != nil {
		logger.Log.Error("failed to remove favorite", "recruiter_id", recruiterID, "error", err)
		return result.Fail("A server error occurred while removing the favorite.")
	}
	if !removed {
		return result.Fail("Favorite not found.")
	}
	return result.Ok()
}

func (u *recruiterUsecase) ListFavorites(ctx context.Context, recruiterID uuid.UUID) result.Result[[]domain.Favorite] {
	if ctx.Err() != nil {
		return result.Failure[[]domain.Favorite](msgOperationCancelled)
	}

	favorites, err := u.recruiterRepo.ListFavorites(ctx, recruiterID)
	if err != nil {
		logger.Log.Error("failed to list favorites", "recruiter_id", recruiterID, "error", err)
		return result.Failure[[]domain.Favorite]("A server error occurred while fetching favorites.")
	}
	return result.Success(favorites)
}
