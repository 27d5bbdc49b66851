package v1

import (
	"net/http"
	"strings"
)

// failureStatus maps a service failure message onto an HTTP status. Services
// deliberately expose only messages, so the delivery layer classifies by the
// few well-known phrasings.
func failureStatus(msg string) int {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "not found"):
		return http.StatusNotFound
	case strings.Contains(lower, "access denied"):
		return http.StatusNotFound
	case strings.Contains(lower, "server error"), strings.Contains(lower, "an error occurred"):
		return http.StatusInternalServerError
	case strings.Contains(lower, "already exists"):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
