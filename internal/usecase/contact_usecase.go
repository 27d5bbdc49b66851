package usecase

import (
	"context"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/internal/mapper"
	"candidate-search-backend/pkg/logger"
	"candidate-search-backend/pkg/result"

	"github.com/google/uuid"
)

const msgContactNotFound = "Contact not found."

type contactUsecase struct {
	contactRepo domain.ContactRepository
}

func NewContactUsecase(contactRepo domain.ContactRepository) domain.ContactService {
	return &contactUsecase{contactRepo: contactRepo}
}

// Add stores a new contact for the caller. Any client-supplied id in the
// payload is discarded; the id is always generated here.
func (u *contactUsecase) Add(ctx context.Context, userID uuid.UUID, dto domain.ContactDTO) result.Result[domain.ContactDTO] {
	if ctx.Err() != nil {
		return result.Failure[domain.ContactDTO](msgOperationCancelled)
	}

	contact := &domain.Contact{
		ID:     uuid.New(),
		UserID: userID,
	}
	mapper.ApplyContactDTO(dto, contact)

	if err := u.contactRepo.Create(ctx, contact); err != nil {
		logger.Log.Error("failed to create contact", "user_id", userID, "error", err)
		return result.Failure[domain.ContactDTO]("A server error occurred while adding the contact.")
	}
	return result.Success(mapper.ContactToDTO(contact))
}

func (u *contactUsecase) Update(ctx context.Context, userID uuid.UUID, dto domain.ContactDTO) result.Result[domain.ContactDTO] {
	if ctx.Err() != nil {
		return result.Failure[domain.ContactDTO](msgOperationCancelled)
	}
	if dto.ID == uuid.Nil {
		return result.Failure[domain.ContactDTO]("Contact id must be provided for update.")
	}

	contact, err := u.contactRepo.GetByIDAndUser(ctx, dto.ID, userID)
	if err != nil {
		logger.Log.Error("failed to load contact", "contact_id", dto.ID, "error", err)
		return result.Failure[domain.ContactDTO]("A server error occurred while updating the contact.")
	}
	if contact == nil {
		return result.Failure[domain.ContactDTO](msgContactNotFound)
	}
	if ctx.Err() != nil {
		return result.Failure[domain.ContactDTO](msgOperationCancelled)
	}

	mapper.ApplyContactDTO(dto, contact)

	if err := u.contactRepo.Update(ctx, contact); err != nil {
		logger.Log.Error("failed to update contact", "contact_id", dto.ID, "error", err)
		return result.Failure[domain.ContactDTO]("A server error occurred while updating the contact.")
	}
	return result.Success(mapper.ContactToDTO(contact))
}

func (u *contactUsecase) Delete(ctx context.Context, userID, contactID uuid.UUID) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}
	if contactID == uuid.Nil {
		return result.Fail("Contact id must be provided for deletion.")
	}

	deleted, err := u.contactRepo.Delete(ctx, contactID, userID)
	if err != nil {
		logger.Log.Error("failed to delete contact", "contact_id", contactID, "error", err)
		return result.Fail("A server error occurred while deleting the contact.")
	}
	if !deleted {
		return result.Fail(msgContactNotFound)
	}
	return result.Ok()
}

func (u *contactUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) result.Result[[]domain.ContactDTO] {
	if ctx.Err() != nil {
		return result.Failure[[]domain.ContactDTO](msgOperationCancelled)
	}

	contacts, err := u.contactRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Error("failed to list contacts", "user_id", userID, "error", err)
		return result.Failure[[]domain.ContactDTO]("A server error occurred while fetching contacts.")
	}
	return result.Success(mapper.ContactsToDTO(contacts))
}
