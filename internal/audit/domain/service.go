package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Service records audit entries. Callers treat failures as non-fatal.
type Service interface {
	AuditLog(ctx context.Context, clientID *snowflake.ID, action, targetType string, targetID *string, metadata map[string]any) error
}
