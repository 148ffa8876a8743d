package repository

import (
	"context"

	"github.com/brunoprp1/maio-convertfy/internal/audit/domain"
	"gorm.io/gorm"
)

type repository struct{}

// Provide builds the audit repository.
func Provide() domain.Repository {
	return repository{}
}

func (repository) Insert(ctx context.Context, db *gorm.DB, entry *domain.AuditLog) error {
	return db.WithContext(ctx).Create(entry).Error
}
