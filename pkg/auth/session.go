package auth

import (
	"errors"
	"fmt"
	"time"

	"candidate-search-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RememberMeDays is the session lifetime when the user opts in to a
// persistent login instead of the short cookie window.
const RememberMeDays = 14

// Claims is the session token payload.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and validates HS256 session tokens carried in the auth cookie.
type Manager struct {
	secret        []byte
	defaultExpiry time.Duration
}

func NewManager(secret string, expireMinutes int) *Manager {
	return &Manager{
		secret:        []byte(secret),
		defaultExpiry: time.Duration(expireMinutes) * time.Minute,
	}
}

func (m *Manager) Issue(user *domain.User, remember bool) (string, time.Time, error) {
	expiry := m.defaultExpiry
	if remember {
		expiry = RememberMeDays * 24 * time.Hour
	}
	expiresAt := time.Now().Add(expiry)

	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse validates the token signature and expiry and returns the claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, errors.New("malformed subject claim")
	}
	return claims, nil
}
