package server

import (
	"errors"
	"net/http"

	credentialdomain "github.com/brunoprp1/maio-convertfy/internal/credential/domain"
	integrationdomain "github.com/brunoprp1/maio-convertfy/internal/integration/domain"
	"github.com/gin-gonic/gin"
)

// APIError is the wire form of a handler failure.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *APIError) Error() string { return e.Message }

var (
	ErrNotFound           = &APIError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"}
	ErrServiceUnavailable = &APIError{Status: http.StatusServiceUnavailable, Code: "service_unavailable", Message: "service unavailable"}
	ErrUpstreamFailed     = &APIError{Status: http.StatusBadGateway, Code: "upstream_error", Message: "upstream provider request failed"}
)

func invalidRequestError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "invalid request"}
}

func newValidationError(field, code, message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: code, Message: message, Field: field}
}

// AbortWithError maps domain errors onto HTTP responses. Unknown errors
// become opaque 500s so internals never leak to the dashboard.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		abort(c, apiErr)
		return
	}

	switch {
	case errors.Is(err, credentialdomain.ErrNotConfigured):
		abort(c, &APIError{
			Status:  http.StatusPreconditionFailed,
			Code:    "integration_not_configured",
			Message: "no billing API credential is configured",
		})
	case errors.Is(err, integrationdomain.ErrClientNotFound):
		abort(c, &APIError{Status: http.StatusNotFound, Code: "client_not_found", Message: "client not found"})
	case errors.Is(err, integrationdomain.ErrCredentialNotFound):
		abort(c, &APIError{Status: http.StatusNotFound, Code: "credential_not_found", Message: "credential not found"})
	case errors.Is(err, integrationdomain.ErrInvalidProvider):
		abort(c, &APIError{Status: http.StatusBadRequest, Code: "invalid_provider", Message: "unsupported integration provider"})
	case errors.Is(err, integrationdomain.ErrInvalidAPIKey):
		abort(c, &APIError{Status: http.StatusBadRequest, Code: "invalid_api_key", Message: "api key must not be empty"})
	default:
		abort(c, &APIError{Status: http.StatusInternalServerError, Code: "internal_error", Message: "internal server error"})
	}
}

func abort(c *gin.Context, apiErr *APIError) {
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
}
