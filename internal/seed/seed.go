package seed

import (
	"context"
	"errors"
	"time"

	"github.com/brunoprp1/maio-convertfy/internal/config"
	integrationdomain "github.com/brunoprp1/maio-convertfy/internal/integration/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	adminExternalID = "admin"
	adminName       = "Convertfy Admin"
	adminEmail      = "admin@convertfy.com.br"
)

// EnsureAdminClient seeds the admin tenant for startup bootstrap. When a
// fallback billing key is configured it is stored as the admin's asaas
// credential so the dashboard works before any per-client key exists.
func EnsureAdminClient(db *gorm.DB, cfg config.Config) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client integrationdomain.Client
		err := tx.WithContext(ctx).
			Where("external_id = ?", adminExternalID).
			First(&client).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now().UTC()
		integrations := datatypes.JSONMap{}
		if cfg.Asaas.FallbackAPIKey != "" {
			cred := integrationdomain.Credential{
				APIKey:    cfg.Asaas.FallbackAPIKey,
				Enabled:   true,
				UpdatedAt: &now,
			}
			integrations[integrationdomain.ProviderAsaas] = cred.ToDocument()
		}

		return tx.WithContext(ctx).Create(&integrationdomain.Client{
			ID:           node.Generate(),
			ExternalID:   adminExternalID,
			Name:         adminName,
			Email:        adminEmail,
			Integrations: integrations,
			CreatedAt:    now,
			UpdatedAt:    now,
		}).Error
	})
}
