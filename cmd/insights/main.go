package main

import (
	"github.com/brunoprp1/maio-convertfy/internal/asaas"
	"github.com/brunoprp1/maio-convertfy/internal/audit"
	"github.com/brunoprp1/maio-convertfy/internal/clock"
	"github.com/brunoprp1/maio-convertfy/internal/config"
	"github.com/brunoprp1/maio-convertfy/internal/credential"
	"github.com/brunoprp1/maio-convertfy/internal/financial"
	"github.com/brunoprp1/maio-convertfy/internal/integration"
	"github.com/brunoprp1/maio-convertfy/internal/klaviyo"
	"github.com/brunoprp1/maio-convertfy/internal/migration"
	"github.com/brunoprp1/maio-convertfy/internal/observability"
	"github.com/brunoprp1/maio-convertfy/internal/seed"
	"github.com/brunoprp1/maio-convertfy/internal/server"
	"github.com/brunoprp1/maio-convertfy/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		clock.Module,
		integration.Module,
		credential.Module,
		audit.Module,
		asaas.Module,
		klaviyo.Module,
		financial.Module,
		fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := migration.RunMigrations(sqlDB); err != nil {
				return err
			}
			if cfg.Bootstrap.EnsureAdminClient {
				return seed.EnsureAdminClient(conn, cfg)
			}
			return nil
		}),
		fx.Provide(server.NewServer),
		fx.Provide(server.NewEngine),
		fx.Invoke(server.RegisterAPIRoutes),
		fx.Invoke(server.RunHTTP),
	)
	app.Run()
}
