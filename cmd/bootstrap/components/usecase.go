package components

import (
	"hotelier/internal/domain/booking"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/usecase"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewTieredPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(c clock.Clock, calc booking.PriceCalculator) *booking.Factory {
		return booking.NewFactory(c, calc)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCustomerCommands,
		commands.NewRoomCommands,
		commands.NewInvoiceCommands,
		commands.NewLoyaltyCommands,
		commands.NewAmenityCommands,
		// Invoice settlement accrues points through the loyalty command side.
		func(lc commands.LoyaltyCommands) commands.PointsAccruer { return lc },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCustomerQueries,
		queries.NewRoomQueries,
		queries.NewInvoiceQueries,
		queries.NewLoyaltyQueries,
		queries.NewAmenityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
