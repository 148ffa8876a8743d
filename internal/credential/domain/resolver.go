package domain

import (
	"context"
	"errors"
)

// Source identifies where a resolved API key came from.
type Source string

const (
	// SourceExplicit means the caller supplied the key directly.
	SourceExplicit Source = "explicit"
	// SourceClient means the key came from the client's stored integration.
	SourceClient Source = "client"
	// SourceFallback means the shared last-resort key was used.
	SourceFallback Source = "fallback"
)

// ErrNotConfigured means no usable credential exists anywhere in the chain.
// Unlike fetch failures this is surfaced to the caller so the dashboard can
// point the user at the integration settings page.
var ErrNotConfigured = errors.New("integration_not_configured")

// Resolved is a usable billing API credential.
type Resolved struct {
	APIKey string
	Source Source
}

// Resolver picks the billing API key for one metrics request.
// Precedence: explicit key, then the client's enabled stored key, then the
// shared fallback key.
type Resolver interface {
	Resolve(ctx context.Context, explicitKey, clientExternalID string) (Resolved, error)
}
