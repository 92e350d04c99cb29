package bootstrap

import (
	"vtcquote/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	RoutingModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
