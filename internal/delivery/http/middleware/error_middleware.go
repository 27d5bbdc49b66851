package middleware

import (
	"errors"
	"net/http"

	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/pkg/apperror"
	"candidate-search-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the context into the standard
// JSON error envelope. Anything that is not an AppError is logged in full and
// reported to the client only as a generic server error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled request error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
