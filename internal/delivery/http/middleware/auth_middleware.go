package middleware

import (
	"net/http"
	"strings"
	"time"

	"candidate-search-backend/config"
	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/internal/domain"
	"candidate-search-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware authenticates the request from the Authorization header or
// the session cookie and loads the account onto the context. Soft-deleted
// users fail authentication even with a still-valid token.
func AuthMiddleware(sessions *auth.Manager, cfg *config.Config, accounts domain.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if header := c.GetHeader("Authorization"); header != "" {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie(cfg.CookieName); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}

		claims, err := sessions.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired session", nil)
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired session", nil)
			c.Abort()
			return
		}

		userRes := accounts.GetByID(c.Request.Context(), userID)
		if userRes.IsFailure() {
			response.Error(c, http.StatusUnauthorized, "Account unavailable", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), userRes.Value().Role)

		// Sliding expiration: reissue the cookie on every authenticated
		// request so an active session never runs out mid-use.
		if cfg.CookieSliding {
			user := &domain.User{ID: userID, Email: claims.Email, Role: userRes.Value().Role}
			if fresh, expiresAt, err := sessions.Issue(user, false); err == nil {
				maxAge := int(time.Until(expiresAt).Seconds())
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(cfg.CookieName, fresh, maxAge, "/", "", !cfg.Debug, true)
			}
		}

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Runs after
// AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
		c.Abort()
	}
}

// UserID extracts the authenticated user's id set by AuthMiddleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(string(domain.KeyUserID))
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
