package usecase_test

import (
	"context"
	"testing"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeInteractionRepo keeps interactions in memory so the workflow tests can
// drive real state transitions instead of scripting mock return values.
type fakeInteractionRepo struct {
	items map[uuid.UUID]domain.Interaction
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{items: make(map[uuid.UUID]domain.Interaction)}
}

func (r *fakeInteractionRepo) Create(_ context.Context, in *domain.Interaction) error {
	r.items[in.ID] = *in
	return nil
}

func (r *fakeInteractionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Interaction, error) {
	in, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := in
	return &cp, nil
}

func (r *fakeInteractionRepo) Update(_ context.Context, in *domain.Interaction) error {
	r.items[in.ID] = *in
	return nil
}

func (r *fakeInteractionRepo) ListByRecruiter(_ context.Context, recruiterID uuid.UUID) ([]domain.Interaction, error) {
	var out []domain.Interaction
	for _, in := range r.items {
		if in.RecruiterID == recruiterID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (r *fakeInteractionRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]domain.Interaction, error) {
	var out []domain.Interaction
	for _, in := range r.items {
		if in.CandidateID == candidateID {
			out = append(out, in)
		}
	}
	return out, nil
}

func TestInteractionWorkflow(t *testing.T) {
	recruiterID := uuid.New()
	candidateID := uuid.New()

	t.Run("create starts as draft with no candidate action", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())

		res := svc.Create(context.Background(), recruiterID, candidateID, "We liked your profile")
		assert.True(t, res.IsSuccess())
		assert.Equal(t, domain.InteractionDraft, res.Value().Status)
		assert.Equal(t, domain.ActionNone, res.Value().CandidateAction)
		assert.Equal(t, "We liked your profile", res.Value().InvitationBody)
	})

	t.Run("send moves draft to sent and refreshes the sent date", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		created := svc.Create(context.Background(), recruiterID, candidateID, "hi").Value()

		res := svc.Send(context.Background(), recruiterID, created.ID)
		assert.True(t, res.IsSuccess())
		assert.Equal(t, domain.InteractionSent, res.Value().Status)
		assert.False(t, res.Value().SentDate.Before(created.SentDate))
	})

	t.Run("send is rejected once the interaction left draft", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		created := svc.Create(context.Background(), recruiterID, candidateID, "hi").Value()
		svc.Send(context.Background(), recruiterID, created.ID)

		res := svc.Send(context.Background(), recruiterID, created.ID)
		assert.False(t, res.IsSuccess())
		assert.Equal(t, "Only draft interactions can be sent.", res.Error())
	})

	t.Run("send by another recruiter reads as not found", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		created := svc.Create(context.Background(), recruiterID, candidateID, "hi").Value()

		res := svc.Send(context.Background(), uuid.New(), created.ID)
		assert.False(t, res.IsSuccess())
		assert.Equal(t, "Interaction not found.", res.Error())
	})
}

func TestInteractionRespond(t *testing.T) {
	recruiterID := uuid.New()
	candidateID := uuid.New()

	sent := func(svc domain.InteractionService) domain.Interaction {
		created := svc.Create(context.Background(), recruiterID, candidateID, "hi").Value()
		return svc.Send(context.Background(), recruiterID, created.ID).Value()
	}

	t.Run("accept records action, reason and response date", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		in := sent(svc)

		res := svc.Respond(context.Background(), candidateID, in.ID, domain.InteractionResponse{
			Action: domain.ActionAccept,
			Reason: "Sounds interesting",
		})
		assert.True(t, res.IsSuccess())
		assert.Equal(t, domain.InteractionAccepted, res.Value().Status)
		assert.Equal(t, domain.ActionAccept, res.Value().CandidateAction)
		assert.Equal(t, "Sounds interesting", res.Value().CandidateActionReason)
		assert.NotNil(t, res.Value().CandidateResponseDate)
	})

	t.Run("decline closes the interaction", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		in := sent(svc)

		res := svc.Respond(context.Background(), candidateID, in.ID, domain.InteractionResponse{Action: domain.ActionDecline})
		assert.True(t, res.IsSuccess())
		assert.Equal(t, domain.InteractionDeclined, res.Value().Status)
	})

	t.Run("asking for details keeps the invitation open as viewed", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		in := sent(svc)

		res := svc.Respond(context.Background(), candidateID, in.ID, domain.InteractionResponse{Action: domain.ActionAskDetails})
		assert.True(t, res.IsSuccess())
		assert.Equal(t, domain.InteractionViewed, res.Value().Status)

		// still answerable after asking for details
		res = svc.Respond(context.Background(), candidateID, in.ID, domain.InteractionResponse{Action: domain.ActionAccept})
		assert.True(t, res.IsSuccess())
		assert.Equal(t, domain.InteractionAccepted, res.Value().Status)
	})

	t.Run("draft invitations cannot be answered", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		created := svc.Create(context.Background(), recruiterID, candidateID, "hi").Value()

		res := svc.Respond(context.Background(), candidateID, created.ID, domain.InteractionResponse{Action: domain.ActionAccept})
		assert.False(t, res.IsSuccess())
		assert.Equal(t, "The invitation is not awaiting a response.", res.Error())
	})

	t.Run("another candidate's invitation reads as not found", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		in := sent(svc)

		res := svc.Respond(context.Background(), uuid.New(), in.ID, domain.InteractionResponse{Action: domain.ActionAccept})
		assert.False(t, res.IsSuccess())
		assert.Equal(t, "Interaction not found.", res.Error())
	})
}

func TestInteractionAdvance(t *testing.T) {
	recruiterID := uuid.New()
	candidateID := uuid.New()

	accepted := func(svc domain.InteractionService) domain.Interaction {
		created := svc.Create(context.Background(), recruiterID, candidateID, "hi").Value()
		svc.Send(context.Background(), recruiterID, created.ID)
		return svc.Respond(context.Background(), candidateID, created.ID, domain.InteractionResponse{Action: domain.ActionAccept}).Value()
	}

	t.Run("accepted interactions move through the hiring stages", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		in := accepted(svc)

		for _, status := range []domain.InteractionStatus{
			domain.InteractionInterviewScheduled,
			domain.InteractionOfferSent,
			domain.InteractionHired,
		} {
			res := svc.Advance(context.Background(), recruiterID, in.ID, status)
			assert.True(t, res.IsSuccess())
			assert.Equal(t, status, res.Value().Status)
		}
	})

	t.Run("only hiring stages are valid targets", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		in := accepted(svc)

		res := svc.Advance(context.Background(), recruiterID, in.ID, domain.InteractionDraft)
		assert.False(t, res.IsSuccess())
		assert.Equal(t, "Unsupported interaction status transition.", res.Error())
	})

	t.Run("declined interactions stay closed", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		created := svc.Create(context.Background(), recruiterID, candidateID, "hi").Value()
		svc.Send(context.Background(), recruiterID, created.ID)
		svc.Respond(context.Background(), candidateID, created.ID, domain.InteractionResponse{Action: domain.ActionDecline})

		res := svc.Advance(context.Background(), recruiterID, created.ID, domain.InteractionRejected)
		assert.False(t, res.IsSuccess())
		assert.Equal(t, "The interaction cannot be advanced from its current status.", res.Error())
	})

	t.Run("drafts cannot be advanced past the candidate", func(t *testing.T) {
		svc := usecase.NewInteractionUsecase(newFakeInteractionRepo())
		created := svc.Create(context.Background(), recruiterID, candidateID, "hi").Value()

		res := svc.Advance(context.Background(), recruiterID, created.ID, domain.InteractionInterviewScheduled)
		assert.False(t, res.IsSuccess())
	})
}

func TestInteractionLists(t *testing.T) {
	repo := newFakeInteractionRepo()
	svc := usecase.NewInteractionUsecase(repo)
	recruiterID := uuid.New()
	candidateID := uuid.New()

	svc.Create(context.Background(), recruiterID, candidateID, "one")
	svc.Create(context.Background(), recruiterID, uuid.New(), "two")
	svc.Create(context.Background(), uuid.New(), candidateID, "three")

	recruiterSide := svc.ListForRecruiter(context.Background(), recruiterID)
	assert.True(t, recruiterSide.IsSuccess())
	assert.Len(t, recruiterSide.Value(), 2)

	candidateSide := svc.ListForCandidate(context.Background(), candidateID)
	assert.True(t, candidateSide.IsSuccess())
	assert.Len(t, candidateSide.Value(), 2)
}
