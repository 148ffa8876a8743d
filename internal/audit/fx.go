package audit

import (
	"github.com/brunoprp1/maio-convertfy/internal/audit/repository"
	"github.com/brunoprp1/maio-convertfy/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
