package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*Client, error)
	Insert(ctx context.Context, db *gorm.DB, client *Client) error
	UpdateIntegrations(ctx context.Context, db *gorm.DB, client *Client) error
}
