package domain

import (
	"context"

	"candidate-search-backend/pkg/result"

	"github.com/google/uuid"
)

type Contact struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        ContactType
	Value       string
	Description string
	IsPrimary   bool
}

type ContactDTO struct {
	ID          uuid.UUID   `json:"id"`
	Type        ContactType `json:"type"`
	Value       string      `json:"value" binding:"required,max=200"`
	Description string      `json:"description,omitempty" binding:"max=500"`
	IsPrimary   bool        `json:"is_primary"`
}

type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	// GetByIDAndUser returns nil when the contact does not exist or belongs
	// to a different user; callers cannot tell the two apart.
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*Contact, error)
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Contact, error)
}

type ContactService interface {
	Add(ctx context.Context, userID uuid.UUID, dto ContactDTO) result.Result[ContactDTO]
	Update(ctx context.Context, userID uuid.UUID, dto ContactDTO) result.Result[ContactDTO]
	Delete(ctx context.Context, userID, contactID uuid.UUID) result.Empty
	GetByUserID(ctx context.Context, userID uuid.UUID) result.Result[[]ContactDTO]
}
