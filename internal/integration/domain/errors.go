package domain

import "errors"

var (
	ErrClientNotFound     = errors.New("client_not_found")
	ErrInvalidProvider    = errors.New("invalid_provider")
	ErrInvalidAPIKey      = errors.New("invalid_api_key")
	ErrCredentialNotFound = errors.New("credential_not_found")
)
