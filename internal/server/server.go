package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/brunoprp1/maio-convertfy/internal/config"
	financialdomain "github.com/brunoprp1/maio-convertfy/internal/financial/domain"
	integrationdomain "github.com/brunoprp1/maio-convertfy/internal/integration/domain"
	"github.com/brunoprp1/maio-convertfy/internal/klaviyo"
	"github.com/brunoprp1/maio-convertfy/internal/observability/logger"
	"github.com/brunoprp1/maio-convertfy/internal/observability/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Cfg            config.Config
	Log            *zap.Logger
	DB             *gorm.DB
	FinancialSvc   financialdomain.Service
	IntegrationSvc integrationdomain.Service
	KlaviyoClient  *klaviyo.Client `optional:"true"`
}

// Server holds the handler dependencies. Routes are registered separately so
// tests can mount a Server on a bare engine.
type Server struct {
	cfg            config.Config
	log            *zap.Logger
	db             *gorm.DB
	financialSvc   financialdomain.Service
	integrationSvc integrationdomain.Service
	klaviyoClient  *klaviyo.Client
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:            p.Cfg,
		log:            p.Log.Named("server"),
		db:             p.DB,
		financialSvc:   p.FinancialSvc,
		integrationSvc: p.IntegrationSvc,
		klaviyoClient:  p.KlaviyoClient,
	}
}

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/health", "/metrics"},
	}))
	engine.Use(metrics.GinMiddleware(httpMetrics))
	return engine
}

// RegisterAPIRoutes mounts every HTTP endpoint.
func RegisterAPIRoutes(engine *gin.Engine, s *Server) {
	engine.GET("/health", s.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	{
		api.GET("/metrics/financial", s.GetFinancialMetrics)
		api.GET("/metrics/klaviyo-revenue", s.GetKlaviyoRevenue)
		api.GET("/clients/:id/integrations/:provider", s.GetIntegration)
		api.PUT("/clients/:id/integrations/:provider", s.PutIntegration)
	}
}

// RunHTTP attaches the listener to the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
