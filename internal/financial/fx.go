package financial

import (
	"github.com/brunoprp1/maio-convertfy/internal/financial/service"
	"go.uber.org/fx"
)

var Module = fx.Module("financial.service",
	fx.Provide(service.NewService),
)
