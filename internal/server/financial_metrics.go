package server

import (
	"net/http"
	"strings"

	financialdomain "github.com/brunoprp1/maio-convertfy/internal/financial/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GetFinancialMetrics(c *gin.Context) {
	if s.financialSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	resp, err := s.financialSvc.GetFinancialMetrics(c.Request.Context(), financialdomain.MetricsRequest{
		ExplicitAPIKey:   strings.TrimSpace(c.GetHeader("X-Api-Key")),
		ClientExternalID: strings.TrimSpace(c.Query("client_id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
