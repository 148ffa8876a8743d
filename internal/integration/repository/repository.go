package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/brunoprp1/maio-convertfy/internal/integration/domain"
	"gorm.io/gorm"
)

type repository struct{}

// Provide builds the client profile repository.
func Provide() domain.Repository {
	return repository{}
}

func (repository) FindByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*domain.Client, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, domain.ErrClientNotFound
	}

	var client domain.Client
	err := db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (repository) Insert(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Create(client).Error
}

func (repository) UpdateIntegrations(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"integrations": client.Integrations,
			"updated_at":   time.Now().UTC(),
		}).Error
}
