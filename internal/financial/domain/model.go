package domain

import "time"

// Payment statuses reported by the billing provider. Only the subset the
// dashboard buckets on is named; every record still counts toward monthly
// revenue regardless of status.
const (
	PaymentStatusReceived             = "RECEIVED"
	PaymentStatusConfirmed            = "CONFIRMED"
	PaymentStatusPending              = "PENDING"
	PaymentStatusAwaitingRiskAnalysis = "AWAITING_RISK_ANALYSIS"
	PaymentStatusOverdue              = "OVERDUE"
)

// PaymentRecord is one charge returned by the billing provider, with the
// amount already normalized to minor units (centavos).
type PaymentRecord struct {
	ID     string
	Value  int64
	Status string
}

// FinancialMetrics is the dashboard snapshot for one client. All amounts are
// int64 minor units in Currency.
type FinancialMetrics struct {
	MonthlyRevenue int64     `json:"monthly_revenue"`
	ReceivedAmount int64     `json:"received_amount"`
	PendingAmount  int64     `json:"pending_amount"`
	OverdueAmount  int64     `json:"overdue_amount"`
	TotalCustomers int64     `json:"total_customers"`
	Currency       string    `json:"currency"`
	LastUpdate     time.Time `json:"last_update"`
	// Degraded marks placeholder figures served because the provider fetch
	// failed. Consumers must not present degraded values as live data.
	Degraded bool `json:"degraded"`
}

// MetricsRequest identifies whose metrics to compute and with which
// credential. Both fields are optional; resolution order is decided by the
// credential resolver.
type MetricsRequest struct {
	ExplicitAPIKey   string
	ClientExternalID string
}
