package components

import (
	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/infra/mail"
	"vtcquote/internal/infra/pdf"
	"vtcquote/internal/pkg/config"
	"vtcquote/internal/usecase"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		pricing.NewFrenchCalendar,
		fx.As(new(pricing.HolidayChecker)),
	),
	pricing.NewEngine,
	func(cfg config.Config) pricing.VATRates {
		return pricing.VATRates{
			RidePercent:    cfg.Pricing.RideVATPercent,
			WaitingPercent: cfg.Pricing.WaitingVATPercent,
		}
	},
	fx.Annotate(
		pdf.NewRenderer,
		fx.As(new(commands.QuotePDFRenderer)),
	),
	fx.Annotate(
		func(cfg config.Config) *mail.Mailer {
			return mail.NewMailer(cfg.SMTP)
		},
		fx.As(new(commands.QuoteMailer)),
	),
	fx.Annotate(
		usecase.NewAuthUseCase,
		fx.As(new(usecase.AuthUseCase)),
		fx.As(new(usecase.TokenValidator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQuoteCommands,
		commands.NewVehicleCommands,
		commands.NewClientCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewVehicleQueries,
		queries.NewClientQueries,
	),
)
