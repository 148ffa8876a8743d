package integration

import (
	"github.com/brunoprp1/maio-convertfy/internal/integration/repository"
	"github.com/brunoprp1/maio-convertfy/internal/integration/service"
	"go.uber.org/fx"
)

var Module = fx.Module("integration.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
