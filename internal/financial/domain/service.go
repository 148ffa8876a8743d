package domain

import "context"

// Service computes dashboard financial metrics.
type Service interface {
	// GetFinancialMetrics aggregates the current month's charges and customer
	// count. Provider failures degrade to placeholder figures; only a missing
	// credential is returned as an error.
	GetFinancialMetrics(ctx context.Context, req MetricsRequest) (FinancialMetrics, error)
}
