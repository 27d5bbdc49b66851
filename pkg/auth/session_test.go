package auth

import (
	"testing"
	"time"

	"candidate-search-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionRoundTrip(t *testing.T) {
	manager := NewManager("test-secret", 30)
	user := &domain.User{
		ID:    uuid.New(),
		Email: "anna@example.com",
		Role:  domain.RoleCandidate,
	}

	token, expiresAt, err := manager.Issue(user, false)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := manager.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
}

func TestSessionRememberMeExtendsExpiry(t *testing.T) {
	manager := NewManager("test-secret", 30)
	user := &domain.User{ID: uuid.New(), Email: "anna@example.com"}

	_, expiresAt, err := manager.Issue(user, true)
	assert.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now().Add(13*24*time.Hour)))
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "anna@example.com"}

	token, _, err := NewManager("secret-a", 30).Issue(user, false)
	assert.NoError(t, err)

	_, err = NewManager("secret-b", 30).Parse(token)
	assert.Error(t, err)
}

func TestSessionRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", 30)

	_, err := manager.Parse("definitely-not-a-jwt")
	assert.Error(t, err)
}
