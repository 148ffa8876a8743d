package server

import (
	"net/http"
	"strings"
	"time"

	integrationdomain "github.com/brunoprp1/maio-convertfy/internal/integration/domain"
	"github.com/brunoprp1/maio-convertfy/internal/observability/logger"
	"github.com/gin-gonic/gin"
)

type integrationResponse struct {
	Provider  string `json:"provider"`
	APIKey    string `json:"api_key"`
	Enabled   bool   `json:"enabled"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type putIntegrationRequest struct {
	APIKey  string `json:"api_key"`
	Enabled bool   `json:"enabled"`
}

// GetIntegration returns a client's stored provider credential. The key is
// always masked; the dashboard only needs to show that one exists.
func (s *Server) GetIntegration(c *gin.Context) {
	clientID := strings.TrimSpace(c.Param("id"))
	provider := strings.TrimSpace(c.Param("provider"))
	if !integrationdomain.ValidProvider(provider) {
		AbortWithError(c, integrationdomain.ErrInvalidProvider)
		return
	}

	cred, err := s.integrationSvc.GetCredential(c.Request.Context(), clientID, provider)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp := integrationResponse{
		Provider: provider,
		APIKey:   logger.MaskAPIKey(cred.APIKey),
		Enabled:  cred.Enabled,
	}
	if cred.UpdatedAt != nil {
		resp.UpdatedAt = cred.UpdatedAt.UTC().Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// PutIntegration stores a provider credential, creating the client row on
// first write.
func (s *Server) PutIntegration(c *gin.Context) {
	clientID := strings.TrimSpace(c.Param("id"))
	provider := strings.TrimSpace(c.Param("provider"))

	var req putIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.integrationSvc.SetCredential(c.Request.Context(), clientID, provider, req.APIKey, req.Enabled); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
