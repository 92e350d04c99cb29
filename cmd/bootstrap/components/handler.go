package components

import (
	"vtcquote/internal/handler"
	"vtcquote/internal/handler/api"
	"vtcquote/internal/handler/middleware"
	"vtcquote/internal/pkg/config"
	"vtcquote/internal/pkg/jwt"
	"vtcquote/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(authUseCase usecase.AuthUseCase, jwtService *jwt.Service, cfg config.Config) *api.AuthHandler {
			return api.NewAuthHandler(authUseCase, jwtService, cfg.Cookie)
		},
		api.NewVehicleHandler,
		api.NewClientHandler,
		api.NewQuoteHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
