package usecase

import (
	"context"
	"errors"
	"time"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/internal/mapper"
	"candidate-search-backend/pkg/apperror"
	"candidate-search-backend/pkg/logger"
	"candidate-search-backend/pkg/result"
	"candidate-search-backend/pkg/security"
	"candidate-search-backend/pkg/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgOperationCancelled   = "Operation cancelled."
	msgInvalidCredentials   = "Invalid email or password."
	msgAccountLocked        = "Account is locked due to too many failed login attempts."
	msgLoginNotAllowed      = "Login is not allowed. Please confirm your email."
	msgUserNotFound         = "User not found."
	msgIncorrectCurrentPass = "Incorrect current password."
)

type accountUsecase struct {
	userRepo    domain.UserRepository
	contactRepo domain.ContactRepository
	sessions    domain.SessionManager
	tracker     *security.LoginTracker
	policy      validation.PasswordPolicy
}

func NewAccountUsecase(
	userRepo domain.UserRepository,
	contactRepo domain.ContactRepository,
	sessions domain.SessionManager,
	tracker *security.LoginTracker,
	policy validation.PasswordPolicy,
) domain.AccountService {
	return &accountUsecase{
		userRepo:    userRepo,
		contactRepo: contactRepo,
		sessions:    sessions,
		tracker:     tracker,
		policy:      policy,
	}
}

func (u *accountUsecase) Register(ctx context.Context, form domain.RegisterForm) result.Result[domain.UserDTO] {
	if ctx.Err() != nil {
		return result.Failure[domain.UserDTO](msgOperationCancelled)
	}

	if msg := u.policy.CheckJoined(form.Password); msg != "" {
		return result.Failure[domain.UserDTO](msg)
	}

	role := form.Role
	if role == "" {
		role = domain.RoleCandidate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return result.Failure[domain.UserDTO]("A server error occurred during registration.")
	}

	user := &domain.User{
		ID:                uuid.New(),
		Email:             form.Email,
		PasswordHash:      string(hash),
		EmailConfirmed:    true,
		Role:              role,
		FirstName:         form.FirstName,
		PreferredLanguage: "ru",
		CreatedAt:         time.Now(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return result.Failure[domain.UserDTO](appErr.Message)
		}
		logger.Log.Error("failed to create user", "error", err)
		return result.Failure[domain.UserDTO]("A server error occurred during registration.")
	}
	if ctx.Err() != nil {
		return result.Failure[domain.UserDTO](msgOperationCancelled)
	}

	// The registration email doubles as the user's first contact entry.
	contact := &domain.Contact{
		ID:        uuid.New(),
		UserID:    user.ID,
		Type:      domain.ContactEmail,
		Value:     user.Email,
		IsPrimary: true,
	}
	if err := u.contactRepo.Create(ctx, contact); err != nil {
		logger.Log.Error("failed to create registration contact", "user_id", user.ID, "error", err)
	}

	return result.Success(mapper.UserToDTO(user))
}

func (u *accountUsecase) Login(ctx context.Context, form domain.LoginForm) result.Result[domain.LoginResult] {
	if ctx.Err() != nil {
		return result.Failure[domain.LoginResult](msgOperationCancelled)
	}

	if u.tracker.IsBlocked(ctx, form.Email) {
		return result.Failure[domain.LoginResult](msgAccountLocked)
	}

	user, err := u.userRepo.GetByEmail(ctx, form.Email)
	if err != nil {
		logger.Log.Error("failed to load user for login", "error", err)
		return result.Failure[domain.LoginResult]("A server error occurred during login.")
	}
	if ctx.Err() != nil {
		return result.Failure[domain.LoginResult](msgOperationCancelled)
	}

	// Unknown email and wrong password answer identically.
	if user == nil || user.IsDeleted {
		u.tracker.RecordFailure(ctx, form.Email)
		return result.Failure[domain.LoginResult](msgInvalidCredentials)
	}

	if user.LockoutUntil != nil && user.LockoutUntil.After(time.Now()) {
		return result.Failure[domain.LoginResult](msgAccountLocked)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		u.tracker.RecordFailure(ctx, form.Email)
		return result.Failure[domain.LoginResult](msgInvalidCredentials)
	}

	if !user.EmailConfirmed {
		return result.Failure[domain.LoginResult](msgLoginNotAllowed)
	}

	u.tracker.Reset(ctx, form.Email)

	token, expiresAt, err := u.sessions.Issue(user, form.RememberMe)
	if err != nil {
		logger.Log.Error("failed to issue session token", "user_id", user.ID, "error", err)
		return result.Failure[domain.LoginResult]("A server error occurred during login.")
	}

	return result.Success(domain.LoginResult{
		User:      mapper.UserToDTO(user),
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Logout is a server-side no-op beyond audit logging; the session cookie is
// cleared at the HTTP layer.
func (u *accountUsecase) Logout(ctx context.Context, userID uuid.UUID) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}
	logger.Log.Info("user logged out", "user_id", userID)
	return result.Ok()
}

func (u *accountUsecase) GetByID(ctx context.Context, id uuid.UUID) result.Result[domain.UserDTO] {
	if ctx.Err() != nil {
		return result.Failure[domain.UserDTO](msgOperationCancelled)
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Error("failed to load user", "user_id", id, "error", err)
		return result.Failure[domain.UserDTO]("A server error occurred while fetching user data.")
	}
	if user == nil || user.IsDeleted {
		return result.Failure[domain.UserDTO](msgUserNotFound)
	}
	return result.Success(mapper.UserToDTO(user))
}

func (u *accountUsecase) Update(ctx context.Context, id uuid.UUID, edit domain.UserEdit) result.Result[domain.UserDTO] {
	if ctx.Err() != nil {
		return result.Failure[domain.UserDTO](msgOperationCancelled)
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Error("failed to load user for update", "user_id", id, "error", err)
		return result.Failure[domain.UserDTO]("A server error occurred while updating the profile.")
	}
	if user == nil || user.IsDeleted {
		return result.Failure[domain.UserDTO](msgUserNotFound)
	}
	if ctx.Err() != nil {
		return result.Failure[domain.UserDTO](msgOperationCancelled)
	}

	mapper.ApplyUserEdit(edit, user)

	if err := u.userRepo.Update(ctx, user); err != nil {
		logger.Log.Error("failed to update user", "user_id", id, "error", err)
		return result.Failure[domain.UserDTO]("A server error occurred while updating the profile.")
	}
	return result.Success(mapper.UserToDTO(user))
}

func (u *accountUsecase) ChangePassword(ctx context.Context, id uuid.UUID, form domain.ChangePasswordForm) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	// Fail fast before touching storage.
	if form.CurrentPassword == "" || form.NewPassword == "" {
		return result.Fail("Current and new password are required.")
	}
	if form.NewPassword != form.ConfirmPassword {
		return result.Fail("New password and confirmation do not match.")
	}
	if msg := u.policy.CheckJoined(form.NewPassword); msg != "" {
		return result.Fail(msg)
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Error("failed to load user for password change", "user_id", id, "error", err)
		return result.Fail("A server error occurred while changing the password.")
	}
	if user == nil || user.IsDeleted {
		return result.Fail(msgUserNotFound)
	}
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.CurrentPassword)); err != nil {
		return result.Fail(msgIncorrectCurrentPass)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash new password", "user_id", id, "error", err)
		return result.Fail("A server error occurred while changing the password.")
	}
	user.PasswordHash = string(hash)

	if err := u.userRepo.Update(ctx, user); err != nil {
		logger.Log.Error("failed to persist password change", "user_id", id, "error", err)
		return result.Fail("A server error occurred while changing the password.")
	}
	return result.Ok()
}

// Delete soft-deletes the account. Repeating the call for an already deleted
// user succeeds without touching the original deletion timestamp.
func (u *accountUsecase) Delete(ctx context.Context, id uuid.UUID) result.Empty {
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Error("failed to load user for deletion", "user_id", id, "error", err)
		return result.Fail("A server error occurred while deleting the user.")
	}
	// Deleting an account that is already gone is not an error.
	if user == nil || user.IsDeleted {
		return result.Ok()
	}
	if ctx.Err() != nil {
		return result.Fail(msgOperationCancelled)
	}

	now := time.Now()
	lockout := now.AddDate(100, 0, 0)
	user.IsDeleted = true
	user.DeletedAt = &now
	user.EmailConfirmed = false
	user.LockoutUntil = &lockout

	if err := u.userRepo.Update(ctx, user); err != nil {
		logger.Log.Error("failed to soft-delete user", "user_id", id, "error", err)
		return result.Fail("A server error occurred while deleting the user.")
	}

	u.tracker.BlockForever(ctx, user.Email)
	return result.Ok()
}
