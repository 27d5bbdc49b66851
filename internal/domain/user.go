package domain

import (
	"context"
	"time"

	"candidate-search-backend/pkg/result"

	"github.com/google/uuid"
)

// User is the persisted account row. PasswordHash and the soft-delete fields
// are server-owned and never surface in projections.
type User struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      string
	EmailConfirmed    bool
	Role              string
	FirstName         string
	LastName          string
	Patronymic        string
	DateOfBirth       time.Time
	PreferredLanguage string
	Description       string
	LockoutUntil      *time.Time
	IsDeleted         bool
	DeletedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// UserDTO is the public projection of a user.
type UserDTO struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name,omitempty"`
	Patronymic        string     `json:"patronymic,omitempty"`
	DateOfBirth       time.Time  `json:"date_of_birth"`
	PreferredLanguage string     `json:"preferred_language"`
	Description       string     `json:"description,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// RegisterForm is the self-registration payload.
type RegisterForm struct {
	FirstName       string `json:"first_name" binding:"required,max=50"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
	Role            string `json:"role" binding:"omitempty,oneof=Candidate Recruiter"`
}

// LoginForm is the login payload.
type LoginForm struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// UserEdit carries the mutable profile fields. Nil means "leave unchanged".
type UserEdit struct {
	FirstName         *string    `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName          *string    `json:"last_name" validate:"omitempty,max=50"`
	Patronymic        *string    `json:"patronymic" validate:"omitempty,max=50"`
	Description       *string    `json:"description" validate:"omitempty,max=500"`
	DateOfBirth       *time.Time `json:"date_of_birth"`
	PreferredLanguage *string    `json:"preferred_language" validate:"omitempty,oneof=en ru es fr de zh ja it pt ar hi"`
}

// ChangePasswordForm carries a password change request.
type ChangePasswordForm struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	User      UserDTO   `json:"user"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// SessionManager issues and validates session tokens for the auth cookie.
type SessionManager interface {
	Issue(user *User, remember bool) (token string, expiresAt time.Time, err error)
}

type AccountService interface {
	Register(ctx context.Context, form RegisterForm) result.Result[UserDTO]
	Login(ctx context.Context, form LoginForm) result.Result[LoginResult]
	Logout(ctx context.Context, userID uuid.UUID) result.Empty
	GetByID(ctx context.Context, id uuid.UUID) result.Result[UserDTO]
	Update(ctx context.Context, id uuid.UUID, edit UserEdit) result.Result[UserDTO]
	ChangePassword(ctx context.Context, id uuid.UUID, form ChangePasswordForm) result.Empty
	Delete(ctx context.Context, id uuid.UUID) result.Empty
}
