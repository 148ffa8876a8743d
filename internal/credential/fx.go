package credential

import (
	"github.com/brunoprp1/maio-convertfy/internal/credential/service"
	"go.uber.org/fx"
)

var Module = fx.Module("credential.resolver",
	fx.Provide(service.NewResolver),
)
