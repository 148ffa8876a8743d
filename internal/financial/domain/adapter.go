package domain

import (
	"context"
	"time"
)

// BillingClient is the upstream billing provider surface the metrics service
// needs. Implementations authenticate per call with the key the credential
// resolver picked.
type BillingClient interface {
	// ListPayments returns every charge due inside [start, end].
	ListPayments(ctx context.Context, apiKey string, start, end time.Time) ([]PaymentRecord, error)
	// CustomerCount returns the provider's total customer count.
	CustomerCount(ctx context.Context, apiKey string) (int64, error)
}
