package domain

import (
	"context"
	"time"

	"candidate-search-backend/pkg/result"

	"github.com/google/uuid"
)

// Interaction is a recruiter-initiated hiring conversation with a candidate,
// moving through the Draft -> Sent -> ... -> Hired/Rejected workflow.
type Interaction struct {
	ID                    uuid.UUID         `json:"id"`
	RecruiterID           uuid.UUID         `json:"recruiter_id"`
	CandidateID           uuid.UUID         `json:"candidate_id"`
	Status                InteractionStatus `json:"status"`
	SentDate              time.Time         `json:"sent_date"`
	InvitationBody        string            `json:"invitation_body,omitempty"`
	CandidateAction       CandidateAction   `json:"candidate_action"`
	CandidateResponseDate *time.Time        `json:"candidate_response_date,omitempty"`
	CandidateActionReason string            `json:"candidate_action_reason,omitempty"`
}

// InteractionResponse is what a candidate sends back for an invitation.
type InteractionResponse struct {
	Action CandidateAction `json:"action" binding:"required,oneof=Accept Decline AskDetails"`
	Reason string          `json:"reason" binding:"max=500"`
}

type InteractionRepository interface {
	Create(ctx context.Context, in *Interaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*Interaction, error)
	Update(ctx context.Context, in *Interaction) error
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Interaction, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Interaction, error)
}

type InteractionService interface {
	Create(ctx context.Context, recruiterID, candidateID uuid.UUID, body string) result.Result[Interaction]
	Send(ctx context.Context, recruiterID, interactionID uuid.UUID) result.Result[Interaction]
	Respond(ctx context.Context, candidateID, interactionID uuid.UUID, resp InteractionResponse) result.Result[Interaction]
	Advance(ctx context.Context, recruiterID, interactionID uuid.UUID, status InteractionStatus) result.Result[Interaction]
	ListForRecruiter(ctx context.Context, recruiterID uuid.UUID) result.Result[[]Interaction]
	ListForCandidate(ctx context.Context, candidateID uuid.UUID) result.Result[[]Interaction]
}
