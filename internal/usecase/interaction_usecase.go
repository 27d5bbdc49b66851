package usecase

import (
	"context"
	"time"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/pkg/logger"
	"candidate-search-backend/pkg/result"

	"github.com/google/uuid"
)

const msgInteractionNotFound = "Interaction not found."

// advanceTargets are the statuses a recruiter may move an interaction to
// after the candidate has engaged.
var advanceTargets = map[domain.InteractionStatus]bool{
	domain.InteractionInterviewScheduled: true,
	domain.InteractionOfferSent:          true,
	domain.InteractionHired:              true,
	domain.InteractionRejected:           true,
}

type interactionUsecase struct {
	interactionRepo domain.InteractionRepository
}

func NewInteractionUsecase(interactionRepo domain.InteractionRepository) domain.InteractionService {
	return &interactionUsecase{interactionRepo: interactionRepo}
}

func (u *interactionUsecase) Create(ctx context.Context, recruiterID, candidateID uuid.UUID, body string) result.Result[domain.Interaction] {
	if ctx.Err() != nil {
		return result.Failure[domain.Interaction](msgOperationCancelled)
	}

	interaction := &domain.Interaction{
		ID:              uuid.New(),
		RecruiterID:     recruiterID,
		CandidateID:     candidateID,
		Status:          domain.InteractionDraft,
		SentDate:        time.Now(),
		InvitationBody:  body,
		CandidateAction: domain.ActionNone,
	}

	if err := u.interactionRepo.Create(ctx, interaction); err != nil {
		logger.Log.Error("failed to create interaction", "recruiter_id", recruiterID, "error", err)
		return result.Failure[domain.Interaction]("A server error occurred while creating the interaction.")
	}
	return result.Success(*interaction)
}

func (u *interactionUsecase) Send(ctx context.Context, recruiterID, interactionID uuid.UUID) result.Result[domain.Interaction] {
	if ctx.Err() != nil {
		return result.Failure[domain.Interaction](msgOperationCancelled)
	}

	interaction, err := u.loadForRecruiter(ctx, recruiterID, interactionID)
	if err != nil {
		return result.Failure[domain.Interaction](err.msg)
	}
	if interaction.Status != domain.InteractionDraft {
		return result.Failure[domain.Interaction]("Only draft interactions can be sent.")
	}
	if ctx.Err() != nil {
		return result.Failure[domain.Interaction](msgOperationCancelled)
	}

	interaction.Status = domain.InteractionSent
	interaction.SentDate = time.Now()

	if uerr := u.interactionRepo.Update(ctx, interaction); uerr != nil {
		logger.Log.Error("failed to send interaction", "interaction_id", interactionID, "error", uerr)
		return result.Failure[domain.Interaction]("A server error occurred while sending the interaction.")
	}
	return result.Success(*interaction)
}

// Respond records the candidate's reply to a sent invitation.
func (u *interactionUsecase) Respond(ctx context.Context, candidateID, interactionID uuid.UUID, resp domain.InteractionResponse) result.Result[domain.Interaction] {
	if ctx.Err() != nil {
		return result.Failure[domain.Interaction](msgOperationCancelled)
	}

	interaction, err := u.interactionRepo.GetByID(ctx, interactionID)
	if err != nil {
		logger.Log.Error("failed to load interaction", "interaction_id", interactionID, "error", err)
		return result.Failure[domain.Interaction]("A server error occurred while responding to the interaction.")
	}
	if interaction == nil || interaction.CandidateID != candidateID {
		return result.Failure[domain.Interaction](msgInteractionNotFound)
	}
	if interaction.Status != domain.InteractionSent && interaction.Status != domain.InteractionViewed {
		return result.Failure[domain.Interaction]("The invitation is not awaiting a response.")
	}
	if ctx.Err() != nil {
		return result.Failure[domain.Interaction](msgOperationCancelled)
	}

	now := time.Now()
	interaction.CandidateAction = resp.Action
	interaction.CandidateResponseDate = &now
	interaction.CandidateActionReason = resp.Reason

	switch resp.Action {
	case domain.ActionAccept:
		interaction.Status = domain.InteractionAccepted
	case domain.ActionDecline:
		interaction.Status = domain.InteractionDeclined
	case domain.ActionAskDetails:
		interaction.Status = domain.InteractionViewed
	}

	if uerr := u.interactionRepo.Update(ctx, interaction); uerr != nil {
		logger.Log.Error("failed to record interaction response", "interaction_id", interactionID, "error", uerr)
		return result.Failure[domain.Interaction]("A server error occurred while responding to the interaction.")
	}
	return result.Success(*interaction)
}

// Advance moves an accepted interaction through the recruiter-side hiring
// stages.
func (u *interactionUsecase) Advance(ctx context.Context, recruiterID, interactionID uuid.UUID, status domain.InteractionStatus) result.Result[domain.Interaction] {
	if ctx.Err() != nil {
		return result.Failure[domain.Interaction](msgOperationCancelled)
	}
	if !advanceTargets[status] {
		return result.Failure[domain.Interaction]("Unsupported interaction status transition.")
	}

	interaction, lerr := u.loadForRecruiter(ctx, recruiterID, interactionID)
	if lerr != nil {
		return result.Failure[domain.Interaction](lerr.msg)
	}
	if interaction.Status == domain.InteractionDraft || interaction.Status == domain.InteractionDeclined {
		return result.Failure[domain.Interaction]("The interaction cannot be advanced from its current status.")
	}
	if ctx.Err() != nil {
		return result.Failure[domain.Interaction](msgOperationCancelled)
	}

	interaction.Status = status

	if err := u.interactionRepo.Update(ctx, interaction); err != nil {
		logger.Log.Error("failed to advance interaction", "interaction_id", interactionID, "error", err)
		return result.Failure[domain.Interaction]("A server error occurred while updating the interaction.")
	}
	return result.Success(*interaction)
}

func (u *interactionUsecase) ListForRecruiter(ctx context.Context, recruiterID uuid.UUID) result.Result[[]domain.Interaction] {
	if ctx.Err() != nil {
		return result.Failure[[]domain.Interaction](msgOperationCancelled)
	}

	interactions, err := u.interactionRepo.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		logger.Log.Error("failed to list interactions", "recruiter_id", recruiterID, "error", err)
		return result.Failure[[]domain.Interaction]("A server error occurred while fetching interactions.")
	}
	return result.Success(interactions)
}

func (u *interactionUsecase) ListForCandidate(ctx context.Context, candidateID uuid.UUID) result.Result[[]domain.Interaction] {
	if ctx.Err() != nil {
		return result.Failure[[]domain.Interaction](msgOperationCancelled)
	}

	interactions, err := u.interactionRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		logger.Log.Error("failed to list interactions", "candidate_id", candidateID, "error", err)
		return result.Failure[[]domain.Interaction]("A server error occurred while fetching interactions.")
	}
	return result.Success(interactions)
}

type loadError struct{ msg string }

// loadForRecruiter fetches an interaction owned by the recruiter, collapsing
// "missing" and "owned by someone else" into the same answer.
func (u *interactionUsecase) loadForRecruiter(ctx context.Context, recruiterID, interactionID uuid.UUID) (*domain.Interaction, *loadError) {
	interaction, err := u.interactionRepo.GetByID(ctx, interactionID)
	if err != nil {
		logger.Log.Error("failed to load interaction", "interaction_id", interactionID, "error", err)
		return nil, &loadError{msg: "A server error occurred while fetching the interaction."}
	}
	if interaction == nil || interaction.RecruiterID != recruiterID {
		return nil, &loadError{msg: msgInteractionNotFound}
	}
	return interaction, nil
}
