package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Supported integration providers.
const (
	ProviderAsaas   = "asaas"
	ProviderKlaviyo = "klaviyo"
)

// Client is one dashboard tenant. Integrations holds per-provider credentials
// nested under the provider name, mirroring the settings document the
// dashboard writes: {"asaas": {"api_key": "...", "enabled": true}}.
type Client struct {
	ID           snowflake.ID      `gorm:"primaryKey" json:"id"`
	ExternalID   string            `gorm:"type:text;not null;uniqueIndex" json:"external_id"`
	Name         string            `gorm:"type:text;not null" json:"name"`
	Email        string            `gorm:"type:text;not null" json:"email"`
	Integrations datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"integrations"`
	CreatedAt    time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"not null" json:"updated_at"`
}

// TableName sets the database table name.
func (Client) TableName() string { return "clients" }

// Credential is one provider credential stored on a client.
type Credential struct {
	APIKey    string     `json:"api_key"`
	Enabled   bool       `json:"enabled"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CredentialFromDocument extracts a provider credential from the stored
// integrations document. Returns false when the provider entry is missing or
// not an object.
func CredentialFromDocument(integrations map[string]any, provider string) (Credential, bool) {
	raw, ok := integrations[provider]
	if !ok {
		return Credential{}, false
	}
	entry, ok := raw.(map[string]any)
	if !ok {
		return Credential{}, false
	}

	cred := Credential{}
	if value, ok := entry["api_key"].(string); ok {
		cred.APIKey = value
	}
	if value, ok := entry["enabled"].(bool); ok {
		cred.Enabled = value
	}
	if value, ok := entry["updated_at"].(string); ok {
		if at, err := time.Parse(time.RFC3339, value); err == nil {
			cred.UpdatedAt = &at
		}
	}
	return cred, true
}

// ToDocument renders the credential into its stored document form.
func (c Credential) ToDocument() map[string]any {
	doc := map[string]any{
		"api_key": c.APIKey,
		"enabled": c.Enabled,
	}
	if c.UpdatedAt != nil {
		doc["updated_at"] = c.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}

// ValidProvider reports whether the provider name is supported.
func ValidProvider(provider string) bool {
	switch provider {
	case ProviderAsaas, ProviderKlaviyo:
		return true
	default:
		return false
	}
}
