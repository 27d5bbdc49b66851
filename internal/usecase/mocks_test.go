package usecase_test

import (
	"context"
	"os"
	"testing"
	"time"

	"candidate-search-backend/internal/domain"
	"candidate-search-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

// Mock repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepo) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Contact, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepo) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

type MockFileRepo struct {
	mock.Mock
}

func (m *MockFileRepo) Create(ctx context.Context, file *domain.File) error {
	return m.Called(ctx, file).Error(0)
}

func (m *MockFileRepo) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.File, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *MockFileRepo) Update(ctx context.Context, file *domain.File) error {
	return m.Called(ctx, file).Error(0)
}

func (m *MockFileRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.File, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.File), args.Error(1)
}

func (m *MockFileRepo) ListByUserAndType(ctx context.Context, userID uuid.UUID, fileType domain.FileType) ([]domain.File, error) {
	args := m.Called(ctx, userID, fileType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.File), args.Error(1)
}

// stubSessions issues a fixed token without signing anything.
type stubSessions struct{}

func (stubSessions) Issue(user *domain.User, remember bool) (string, time.Time, error) {
	return "stub-token", time.Now().Add(30 * time.Minute), nil
}
