package service

import (
	"context"
	"strings"
	"time"

	auditdomain "github.com/brunoprp1/maio-convertfy/internal/audit/domain"
	"github.com/brunoprp1/maio-convertfy/internal/integration/domain"
	"github.com/brunoprp1/maio-convertfy/internal/observability/logger"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	AuditSvc auditdomain.Service `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	auditSvc auditdomain.Service
}

func NewService(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("integration.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		auditSvc: p.AuditSvc,
	}
}

func (s *Service) GetCredential(ctx context.Context, clientExternalID, provider string) (domain.Credential, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if !domain.ValidProvider(provider) {
		return domain.Credential{}, domain.ErrInvalidProvider
	}

	client, err := s.repo.FindByExternalID(ctx, s.db, clientExternalID)
	if err != nil {
		return domain.Credential{}, err
	}

	cred, ok := domain.CredentialFromDocument(client.Integrations, provider)
	if !ok {
		return domain.Credential{}, domain.ErrCredentialNotFound
	}
	return cred, nil
}

func (s *Service) SetCredential(ctx context.Context, clientExternalID, provider, apiKey string, enabled bool) error {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if !domain.ValidProvider(provider) {
		return domain.ErrInvalidProvider
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return domain.ErrInvalidAPIKey
	}
	clientExternalID = strings.TrimSpace(clientExternalID)
	if clientExternalID == "" {
		return domain.ErrClientNotFound
	}

	now := time.Now().UTC()
	cred := domain.Credential{APIKey: apiKey, Enabled: enabled, UpdatedAt: &now}

	client, err := s.repo.FindByExternalID(ctx, s.db, clientExternalID)
	switch {
	case err == nil:
		if client.Integrations == nil {
			client.Integrations = datatypes.JSONMap{}
		}
		client.Integrations[provider] = cred.ToDocument()
		if err := s.repo.UpdateIntegrations(ctx, s.db, client); err != nil {
			return err
		}
	case err == domain.ErrClientNotFound:
		client = &domain.Client{
			ID:           s.genID.Generate(),
			ExternalID:   clientExternalID,
			Integrations: datatypes.JSONMap{provider: cred.ToDocument()},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.repo.Insert(ctx, s.db, client); err != nil {
			return err
		}
	default:
		return err
	}

	s.log.Info("integration credential updated",
		zap.String("client", clientExternalID),
		zap.String("provider", provider),
		zap.String("api_key", logger.MaskAPIKey(apiKey)),
		zap.Bool("enabled", enabled),
	)

	if s.auditSvc != nil {
		clientID := client.ID
		targetID := provider
		_ = s.auditSvc.AuditLog(ctx, &clientID, "integration.update", "integration", &targetID, map[string]any{
			"provider": provider,
			"api_key":  logger.MaskAPIKey(apiKey),
			"enabled":  enabled,
		})
	}

	return nil
}
