package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brunoprp1/maio-convertfy/internal/integration/domain"
	"github.com/brunoprp1/maio-convertfy/internal/integration/repository"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) domain.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS clients (
			id BIGINT PRIMARY KEY,
			external_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			integrations TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	).Error; err != nil {
		t.Fatalf("create clients: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}

	return NewService(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestSetCredentialCreatesClientOnFirstWrite(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if err := svc.SetCredential(ctx, "client-1", domain.ProviderAsaas, "key-abc-1234", true); err != nil {
		t.Fatalf("set credential: %v", err)
	}

	cred, err := svc.GetCredential(ctx, "client-1", domain.ProviderAsaas)
	if err != nil {
		t.Fatalf("get credential: %v", err)
	}
	if cred.APIKey != "key-abc-1234" {
		t.Fatalf("expected stored api key, got %q", cred.APIKey)
	}
	if !cred.Enabled {
		t.Fatalf("expected credential enabled")
	}
	if cred.UpdatedAt == nil {
		t.Fatalf("expected updated_at to be recorded")
	}
}

func TestSetCredentialKeepsOtherProviders(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if err := svc.SetCredential(ctx, "client-2", domain.ProviderAsaas, "asaas-key", true); err != nil {
		t.Fatalf("set asaas credential: %v", err)
	}
	if err := svc.SetCredential(ctx, "client-2", domain.ProviderKlaviyo, "klaviyo-key", false); err != nil {
		t.Fatalf("set klaviyo credential: %v", err)
	}

	asaas, err := svc.GetCredential(ctx, "client-2", domain.ProviderAsaas)
	if err != nil {
		t.Fatalf("get asaas credential: %v", err)
	}
	if asaas.APIKey != "asaas-key" || !asaas.Enabled {
		t.Fatalf("asaas credential clobbered: %+v", asaas)
	}

	klaviyo, err := svc.GetCredential(ctx, "client-2", domain.ProviderKlaviyo)
	if err != nil {
		t.Fatalf("get klaviyo credential: %v", err)
	}
	if klaviyo.Enabled {
		t.Fatalf("expected klaviyo credential disabled")
	}
}

func TestGetCredentialMissingClient(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GetCredential(context.Background(), "nobody", domain.ProviderAsaas)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestGetCredentialMissingProviderEntry(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if err := svc.SetCredential(ctx, "client-3", domain.ProviderAsaas, "asaas-key", true); err != nil {
		t.Fatalf("set credential: %v", err)
	}

	_, err := svc.GetCredential(ctx, "client-3", domain.ProviderKlaviyo)
	if !errors.Is(err, domain.ErrCredentialNotFound) {
		t.Fatalf("expected ErrCredentialNotFound, got %v", err)
	}
}

func TestSetCredentialValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if err := svc.SetCredential(ctx, "client-4", "stripe", "key", true); !errors.Is(err, domain.ErrInvalidProvider) {
		t.Fatalf("expected ErrInvalidProvider, got %v", err)
	}
	if err := svc.SetCredential(ctx, "client-4", domain.ProviderAsaas, "   ", true); !errors.Is(err, domain.ErrInvalidAPIKey) {
		t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
	}
}
