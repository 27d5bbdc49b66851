package usecase

import (
	"context"
	"time"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/pkg/logger"
	"candidate-search-backend/pkg/result"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository, validate *validator.Validate) domain.CandidateProfileService {
	return &candidateUsecase{candidateRepo: candidateRepo, validate: validate}
}

func (u *candidateUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) result.Result[domain.CandidateDetails] {
	if ctx.Err() != nil {
		return result.Failure[domain.CandidateDetails](msgOperationCancelled)
	}

	details, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Error("failed to load candidate profile", "user_id", userID, "error", err)
		return result.Failure[domain.CandidateDetails]("A server error occurred while fetching the profile.")
	}
	if details == nil {
		return result.Failure[domain.CandidateDetails]("Candidate profile not found.")
	}
	return result.Success(*details)
}

// Upsert stores the full profile under the caller's id, overriding whatever
// owner the payload claims.
func (u *candidateUsecase) Upsert(ctx context.Context, userID uuid.UUID, details domain.CandidateDetails) result.Result[domain.CandidateDetails] {
	if ctx.Err() != nil {
		return result.Failure[domain.CandidateDetails](msgOperationCancelled)
	}

	details.Profile.UserID = userID

	if err := u.validate.Struct(details); err != nil {
		return result.Failure[domain.CandidateDetails](err.Error())
	}

	if err := u.candidateRepo.Upsert(ctx, &details); err != nil {
		logger.Log.Error("failed to upsert candidate profile", "user_id", userID, "error", err)
		return result.Failure[domain.CandidateDetails]("A server error occurred while saving the profile.")
	}
	if ctx.Err() != nil {
		return result.Failure[domain.CandidateDetails](msgOperationCancelled)
	}

	saved, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil || saved == nil {
		logger.Log.Error("failed to reload candidate profile", "user_id", userID, "error", err)
		return result.Failure[domain.CandidateDetails]("A server error occurred while saving the profile.")
	}
	return result.Success(*saved)
}

// ValidateSkill links one of the caller's skills to one of their test results.
// Both sides must belong to the caller's profile.
func (u *candidateUsecase) ValidateSkill(ctx context.Context, userID uuid.UUID, v domain.SkillValidation) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	details, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Error("failed to load profile for skill validation", "user_id", userID, "error", err)
		return result.Fail("A server error occurred while validating the skill.")
	}
	if details == nil {
		return result.Fail("Candidate profile not found.")
	}

	ownsSkill := false
	for _, s := range details.Skills {
		if s.ID == v.CandidateSkillID {
			ownsSkill = true
			break
		}
	}
	ownsResult := false
	for _, t := range details.TestResults {
		if t.ID == v.TestResultID {
			ownsResult = true
			break
		}
	}
	if !ownsSkill || !ownsResult {
		return result.Fail("Skill or test result not found.")
	}
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	if v.ValidatedAt.IsZero() {
		v.ValidatedAt = time.Now()
	}
	if err := u.candidateRepo.AddSkillValidation(ctx, &v); err != nil {
		logger.Log.Error("failed to record skill validation", "user_id", userID, "error", err)
		return result.Fail("A server error occurred while validating the skill.")
	}
	return result.Ok()
}
