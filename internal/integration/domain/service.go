package domain

import "context"

// Service exposes the per-client integration credential store.
type Service interface {
	// GetCredential returns the stored credential for one provider.
	GetCredential(ctx context.Context, clientExternalID, provider string) (Credential, error)
	// SetCredential stores a provider credential, creating the client row on
	// first write.
	SetCredential(ctx context.Context, clientExternalID, provider, apiKey string, enabled bool) error
}
