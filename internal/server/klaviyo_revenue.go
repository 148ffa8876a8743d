package server

import (
	"net/http"
	"strings"
	"time"

	integrationdomain "github.com/brunoprp1/maio-convertfy/internal/integration/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const revenueDateLayout = "2006-01-02"

// GetKlaviyoRevenue proxies the campaign revenue report so the dashboard
// never holds Klaviyo credentials. The key comes from the X-Api-Key header or
// from the client's stored klaviyo integration.
func (s *Server) GetKlaviyoRevenue(c *gin.Context) {
	if s.klaviyoClient == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	apiKey := strings.TrimSpace(c.GetHeader("X-Api-Key"))
	if apiKey == "" {
		clientID := strings.TrimSpace(c.Query("client_id"))
		if clientID == "" {
			AbortWithError(c, newValidationError("client_id", "missing_credential", "provide X-Api-Key or client_id"))
			return
		}
		cred, err := s.integrationSvc.GetCredential(c.Request.Context(), clientID, integrationdomain.ProviderKlaviyo)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if !cred.Enabled || strings.TrimSpace(cred.APIKey) == "" {
			AbortWithError(c, &APIError{
				Status:  http.StatusPreconditionFailed,
				Code:    "integration_not_configured",
				Message: "no klaviyo credential is configured",
			})
			return
		}
		apiKey = strings.TrimSpace(cred.APIKey)
	}

	start, end, err := revenueWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		AbortWithError(c, newValidationError("start", "invalid_date", "dates must be YYYY-MM-DD"))
		return
	}

	total, err := s.klaviyoClient.Revenue(c.Request.Context(), apiKey, start, end)
	if err != nil {
		s.log.Warn("klaviyo revenue fetch failed", zap.Error(err))
		AbortWithError(c, ErrUpstreamFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"revenue":  total,
		"currency": "BRL",
		"start":    start.Format(revenueDateLayout),
		"end":      end.Format(revenueDateLayout),
	}})
}

// revenueWindow parses the optional date range, defaulting to the current
// month.
func revenueWindow(rawStart, rawEnd string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	if raw := strings.TrimSpace(rawStart); raw != "" {
		parsed, err := time.Parse(revenueDateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if raw := strings.TrimSpace(rawEnd); raw != "" {
		parsed, err := time.Parse(revenueDateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}
	return start, end, nil
}
