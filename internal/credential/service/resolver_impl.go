package service

import (
	"context"
	"strings"

	"github.com/brunoprp1/maio-convertfy/internal/config"
	"github.com/brunoprp1/maio-convertfy/internal/credential/domain"
	integrationdomain "github.com/brunoprp1/maio-convertfy/internal/integration/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log            *zap.Logger
	Cfg            config.Config
	IntegrationSvc integrationdomain.Service
}

type Resolver struct {
	log            *zap.Logger
	integrationSvc integrationdomain.Service
	fallbackAPIKey string
}

func NewResolver(p Params) domain.Resolver {
	return &Resolver{
		log:            p.Log.Named("credential.resolver"),
		integrationSvc: p.IntegrationSvc,
		fallbackAPIKey: strings.TrimSpace(p.Cfg.Asaas.FallbackAPIKey),
	}
}

func (r *Resolver) Resolve(ctx context.Context, explicitKey, clientExternalID string) (domain.Resolved, error) {
	if key := strings.TrimSpace(explicitKey); key != "" {
		return domain.Resolved{APIKey: key, Source: domain.SourceExplicit}, nil
	}

	if clientExternalID = strings.TrimSpace(clientExternalID); clientExternalID != "" {
		cred, err := r.integrationSvc.GetCredential(ctx, clientExternalID, integrationdomain.ProviderAsaas)
		switch {
		case err != nil:
			// Metrics are advisory, so profile-store failures fall through to
			// the shared key instead of failing the request.
			r.log.Warn("client credential lookup failed",
				zap.String("client", clientExternalID),
				zap.Error(err),
			)
		case cred.Enabled && strings.TrimSpace(cred.APIKey) != "":
			return domain.Resolved{APIKey: strings.TrimSpace(cred.APIKey), Source: domain.SourceClient}, nil
		}
	}

	if r.fallbackAPIKey != "" {
		return domain.Resolved{APIKey: r.fallbackAPIKey, Source: domain.SourceFallback}, nil
	}

	return domain.Resolved{}, domain.ErrNotConfigured
}
