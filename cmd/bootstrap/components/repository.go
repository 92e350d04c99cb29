package components

import (
	"vtcquote/internal/infra/repository"
	"vtcquote/internal/usecase"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
			fx.As(new(commands.DriverReader)),
		),
		fx.Annotate(
			repository.NewVehicleRepository,
			fx.As(new(commands.VehicleRepository)),
		),
		fx.Annotate(
			repository.NewClientRepository,
			fx.As(new(commands.ClientRepository)),
		),
		fx.Annotate(
			repository.NewQuoteRepository,
			fx.As(new(commands.QuoteRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			repository.NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
		),
		fx.Annotate(
			repository.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		fx.Annotate(
			repository.NewQuoteReadStore,
			fx.As(new(queries.QuoteReadStore)),
		),
	),
)
