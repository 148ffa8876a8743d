package asaas

import (
	financialdomain "github.com/brunoprp1/maio-convertfy/internal/financial/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("asaas.client",
	fx.Provide(
		fx.Annotate(NewClient, fx.As(new(financialdomain.BillingClient))),
	),
)
