package klaviyo

import "go.uber.org/fx"

var Module = fx.Module("klaviyo.client",
	fx.Provide(NewClient),
)
