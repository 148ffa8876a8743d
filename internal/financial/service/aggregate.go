package service

import (
	"time"

	"github.com/brunoprp1/maio-convertfy/internal/financial/domain"
)

// monthWindow returns the first and last day of now's month, in UTC. The
// billing API filters by due date at day granularity, so day precision is
// enough.
func monthWindow(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

type totals struct {
	monthly  int64
	received int64
	pending  int64
	overdue  int64
}

// aggregatePayments buckets charges by settlement status. Every record
// counts toward the monthly total; only the named statuses feed the buckets.
func aggregatePayments(records []domain.PaymentRecord) totals {
	var t totals
	for _, record := range records {
		t.monthly += record.Value
		switch record.Status {
		case domain.PaymentStatusReceived, domain.PaymentStatusConfirmed:
			t.received += record.Value
		case domain.PaymentStatusPending, domain.PaymentStatusAwaitingRiskAnalysis:
			t.pending += record.Value
		case domain.PaymentStatusOverdue:
			t.overdue += record.Value
		}
	}
	return t
}
