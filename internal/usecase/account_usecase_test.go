package usecase_test

import (
	"context"
	"testing"
	"time"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/internal/usecase"
	"candidate-search-backend/pkg/apperror"
	"candidate-search-backend/pkg/security"
	"candidate-search-backend/pkg/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAccountService(userRepo *MockUserRepo, contactRepo *MockContactRepo) domain.AccountService {
	return usecase.NewAccountUsecase(
		userRepo,
		contactRepo,
		stubSessions{},
		security.NewLoginTracker(security.DefaultLoginTrackerConfig()),
		validation.PasswordPolicy{MinLength: 6},
	)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAccountRegister(t *testing.T) {
	t.Run("creates user and primary email contact", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		contactRepo := new(MockContactRepo)
		svc := newAccountService(userRepo, contactRepo)

		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		contactRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Contact) bool {
			return c.Type == domain.ContactEmail && c.IsPrimary && c.Value == "new@example.com"
		})).Return(nil)

		res := svc.Register(context.Background(), domain.RegisterForm{
			FirstName:       "Anna",
			Email:           "new@example.com",
			Password:        "secret1",
			ConfirmPassword: "secret1",
		})

		assert.True(t, res.IsSuccess())
		assert.Equal(t, domain.RoleCandidate, res.Value().Role)
		contactRepo.AssertExpectations(t)
	})

	t.Run("rejects password violating the policy", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		res := svc.Register(context.Background(), domain.RegisterForm{
			FirstName: "Anna",
			Email:     "new@example.com",
			Password:  "abc",
		})

		assert.True(t, res.IsFailure())
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("surfaces duplicate email conflict", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		userRepo.On("Create", mock.Anything, mock.Anything).
			Return(apperror.Conflict("User with this email already exists."))

		res := svc.Register(context.Background(), domain.RegisterForm{
			FirstName: "Anna",
			Email:     "taken@example.com",
			Password:  "secret1",
		})

		assert.True(t, res.IsFailure())
		assert.Contains(t, res.Error(), "already exists")
	})

	t.Run("cancelled context yields cancellation failure", func(t *testing.T) {
		svc := newAccountService(new(MockUserRepo), new(MockContactRepo))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res := svc.Register(ctx, domain.RegisterForm{
			FirstName: "Anna",
			Email:     "new@example.com",
			Password:  "secret1",
		})

		assert.True(t, res.IsFailure())
		assert.Equal(t, "Operation cancelled.", res.Error())
	})
}

func TestAccountLogin(t *testing.T) {
	password := "secret1"

	t.Run("same message for unknown email and wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		userRepo.On("GetByEmail", mock.Anything, "missing@example.com").Return(nil, nil)

		known := &domain.User{
			ID:             uuid.New(),
			Email:          "known@example.com",
			PasswordHash:   hashOf(t, password),
			EmailConfirmed: true,
		}
		userRepo.On("GetByEmail", mock.Anything, "known@example.com").Return(known, nil)

		missing := svc.Login(context.Background(), domain.LoginForm{Email: "missing@example.com", Password: password})
		wrongPass := svc.Login(context.Background(), domain.LoginForm{Email: "known@example.com", Password: "wrong-pass"})

		assert.True(t, missing.IsFailure())
		assert.True(t, wrongPass.IsFailure())
		assert.Equal(t, missing.Error(), wrongPass.Error())
	})

	t.Run("successful login issues a session", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		user := &domain.User{
			ID:             uuid.New(),
			Email:          "known@example.com",
			PasswordHash:   hashOf(t, password),
			EmailConfirmed: true,
			FirstName:      "Anna",
		}
		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		res := svc.Login(context.Background(), domain.LoginForm{Email: user.Email, Password: password})

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "stub-token", res.Value().Token)
		assert.Equal(t, user.ID, res.Value().User.ID)
	})

	t.Run("unconfirmed email is a distinct refusal", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		user := &domain.User{
			ID:           uuid.New(),
			Email:        "pending@example.com",
			PasswordHash: hashOf(t, password),
		}
		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		res := svc.Login(context.Background(), domain.LoginForm{Email: user.Email, Password: password})

		assert.True(t, res.IsFailure())
		assert.Contains(t, res.Error(), "not allowed")
	})

	t.Run("database lockout blocks even with the right password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		until := time.Now().Add(time.Hour)
		user := &domain.User{
			ID:             uuid.New(),
			Email:          "locked@example.com",
			PasswordHash:   hashOf(t, password),
			EmailConfirmed: true,
			LockoutUntil:   &until,
		}
		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		res := svc.Login(context.Background(), domain.LoginForm{Email: user.Email, Password: password})

		assert.True(t, res.IsFailure())
		assert.Contains(t, res.Error(), "locked")
	})

	t.Run("soft-deleted account behaves like an unknown one", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		user := &domain.User{
			ID:           uuid.New(),
			Email:        "gone@example.com",
			PasswordHash: hashOf(t, password),
			IsDeleted:    true,
		}
		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

		res := svc.Login(context.Background(), domain.LoginForm{Email: user.Email, Password: password})

		assert.True(t, res.IsFailure())
		assert.Equal(t, "Invalid email or password.", res.Error())
	})
}

func TestAccountGetByID(t *testing.T) {
	t.Run("missing user fails not found", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		userRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)

		res := svc.GetByID(context.Background(), uuid.New())

		assert.True(t, res.IsFailure())
		assert.Equal(t, "User not found.", res.Error())
	})
}

func TestAccountUpdate(t *testing.T) {
	t.Run("applies only provided fields", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		user := &domain.User{
			ID:        uuid.New(),
			FirstName: "Anna",
			LastName:  "Smith",
		}
		userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		newName := "Anya"
		res := svc.Update(context.Background(), user.ID, domain.UserEdit{FirstName: &newName})

		assert.True(t, res.IsSuccess())
		assert.Equal(t, "Anya", res.Value().FirstName)
		assert.Equal(t, "Smith", res.Value().LastName)
	})
}

func TestAccountChangePassword(t *testing.T) {
	t.Run("fails fast when fields missing, storage untouched", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		res := svc.ChangePassword(context.Background(), uuid.New(), domain.ChangePasswordForm{
			NewPassword: "secret2",
		})

		assert.True(t, res.IsFailure())
		userRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("wrong current password is a distinct message", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		user := &domain.User{ID: uuid.New(), PasswordHash: hashOf(t, "secret1")}
		userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

		res := svc.ChangePassword(context.Background(), user.ID, domain.ChangePasswordForm{
			CurrentPassword: "not-it",
			NewPassword:     "secret2",
			ConfirmPassword: "secret2",
		})

		assert.True(t, res.IsFailure())
		assert.Equal(t, "Incorrect current password.", res.Error())
	})

	t.Run("rehashes and persists on success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		oldHash := hashOf(t, "secret1")
		user := &domain.User{ID: uuid.New(), PasswordHash: oldHash}
		userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		res := svc.ChangePassword(context.Background(), user.ID, domain.ChangePasswordForm{
			CurrentPassword: "secret1",
			NewPassword:     "secret2",
			ConfirmPassword: "secret2",
		})

		assert.True(t, res.IsSuccess())
		assert.NotEqual(t, oldHash, user.PasswordHash)
	})
}

func TestAccountDelete(t *testing.T) {
	t.Run("soft delete sets flag, timestamp and locks the account out", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		user := &domain.User{ID: uuid.New(), Email: "gone@example.com", EmailConfirmed: true}
		userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Update", mock.Anything, user).Return(nil)

		res := svc.Delete(context.Background(), user.ID)

		assert.True(t, res.IsSuccess())
		assert.True(t, user.IsDeleted)
		assert.NotNil(t, user.DeletedAt)
		assert.False(t, user.EmailConfirmed)
		if assert.NotNil(t, user.LockoutUntil) {
			assert.True(t, user.LockoutUntil.After(time.Now().AddDate(50, 0, 0)))
		}
	})

	t.Run("deleting an unknown user succeeds", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		id := uuid.New()
		userRepo.On("GetByID", mock.Anything, id).Return(nil, nil)

		res := svc.Delete(context.Background(), id)

		assert.True(t, res.IsSuccess())
		userRepo.AssertNotCalled(t, "Update")
	})

	t.Run("repeated delete succeeds without touching the timestamp", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newAccountService(userRepo, new(MockContactRepo))

		deletedAt := time.Now().Add(-24 * time.Hour)
		user := &domain.User{ID: uuid.New(), IsDeleted: true, DeletedAt: &deletedAt}
		userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

		res := svc.Delete(context.Background(), user.ID)

		assert.True(t, res.IsSuccess())
		assert.Equal(t, deletedAt, *user.DeletedAt)
		userRepo.AssertNotCalled(t, "Update")
	})
}
