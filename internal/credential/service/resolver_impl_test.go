package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brunoprp1/maio-convertfy/internal/config"
	"github.com/brunoprp1/maio-convertfy/internal/credential/domain"
	integrationdomain "github.com/brunoprp1/maio-convertfy/internal/integration/domain"
	"go.uber.org/zap"
)

type stubIntegrationService struct {
	cred integrationdomain.Credential
	err  error
}

func (s *stubIntegrationService) GetCredential(ctx context.Context, clientExternalID, provider string) (integrationdomain.Credential, error) {
	if s.err != nil {
		return integrationdomain.Credential{}, s.err
	}
	return s.cred, nil
}

func (s *stubIntegrationService) SetCredential(ctx context.Context, clientExternalID, provider, apiKey string, enabled bool) error {
	return nil
}

func newResolver(t *testing.T, integrations integrationdomain.Service, fallback string) domain.Resolver {
	t.Helper()
	cfg := config.Config{}
	cfg.Asaas.FallbackAPIKey = fallback
	return NewResolver(Params{
		Log:            zap.NewNop(),
		Cfg:            cfg,
		IntegrationSvc: integrations,
	})
}

func TestResolveExplicitKeyWinsOverStoredCredential(t *testing.T) {
	now := time.Now()
	integrations := &stubIntegrationService{
		cred: integrationdomain.Credential{APIKey: "stored-key", Enabled: false, UpdatedAt: &now},
	}
	r := newResolver(t, integrations, "fallback-key")

	got, err := r.Resolve(context.Background(), "explicit-key", "client-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.APIKey != "explicit-key" || got.Source != domain.SourceExplicit {
		t.Fatalf("expected explicit key, got %+v", got)
	}
}

func TestResolveStoredCredentialWinsOverFallback(t *testing.T) {
	integrations := &stubIntegrationService{
		cred: integrationdomain.Credential{APIKey: "stored-key", Enabled: true},
	}
	r := newResolver(t, integrations, "fallback-key")

	got, err := r.Resolve(context.Background(), "", "client-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.APIKey != "stored-key" || got.Source != domain.SourceClient {
		t.Fatalf("expected stored key, got %+v", got)
	}
}

func TestResolveDisabledCredentialFallsThrough(t *testing.T) {
	integrations := &stubIntegrationService{
		cred: integrationdomain.Credential{APIKey: "stored-key", Enabled: false},
	}
	r := newResolver(t, integrations, "fallback-key")

	got, err := r.Resolve(context.Background(), "", "client-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.APIKey != "fallback-key" || got.Source != domain.SourceFallback {
		t.Fatalf("expected fallback key, got %+v", got)
	}
}

func TestResolveStoreErrorFallsThrough(t *testing.T) {
	integrations := &stubIntegrationService{err: errors.New("db down")}
	r := newResolver(t, integrations, "fallback-key")

	got, err := r.Resolve(context.Background(), "", "client-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.APIKey != "fallback-key" || got.Source != domain.SourceFallback {
		t.Fatalf("expected fallback key, got %+v", got)
	}
}

func TestResolveMissingClientSkipsLookup(t *testing.T) {
	integrations := &stubIntegrationService{
		cred: integrationdomain.Credential{APIKey: "stored-key", Enabled: true},
	}
	r := newResolver(t, integrations, "fallback-key")

	got, err := r.Resolve(context.Background(), "", "  ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Source != domain.SourceFallback {
		t.Fatalf("expected fallback without client id, got %+v", got)
	}
}

func TestResolveNothingConfigured(t *testing.T) {
	integrations := &stubIntegrationService{err: integrationdomain.ErrClientNotFound}
	r := newResolver(t, integrations, "")

	_, err := r.Resolve(context.Background(), "", "client-1")
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
