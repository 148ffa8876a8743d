package observability

import (
	"github.com/brunoprp1/maio-convertfy/internal/config"
	"github.com/brunoprp1/maio-convertfy/internal/observability/logger"
	"github.com/brunoprp1/maio-convertfy/internal/observability/metrics"
	"github.com/brunoprp1/maio-convertfy/internal/observability/tracing"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("observability",
	logger.Module,
	fx.Provide(func(cfg config.Config) metrics.Config {
		return metrics.Config{
			ServiceName: cfg.ServiceName,
			Environment: cfg.Environment,
		}
	}),
	fx.Provide(metrics.NewHTTPMetrics),
	fx.Provide(metrics.NewUpstreamMetrics),
	fx.Invoke(func(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) error {
		return tracing.NewProvider(lc, tracing.Config{
			Enabled:          cfg.Tracing.Enabled,
			ServiceName:      cfg.ServiceName,
			Environment:      cfg.Environment,
			ExporterEndpoint: cfg.Tracing.ExporterEndpoint,
			ExporterProtocol: cfg.Tracing.ExporterProtocol,
			SamplingRatio:    cfg.Tracing.SamplingRatio,
		}, log)
	}),
)
