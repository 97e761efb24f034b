package components

import (
	"hotelier/internal/infra/readstore"
	"hotelier/internal/infra/repository"
	"hotelier/internal/usecase/commands"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

// Readstore constructors already return their queries interfaces, so no
// annotation is needed on the read side.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewBookingReadStore,
		readstore.NewRoomReadStore,
		readstore.NewCustomerReadStore,
		readstore.NewInvoiceReadStore,
		readstore.NewLoyaltyReadStore,
		readstore.NewUserReadStore,
		readstore.NewAmenityReadStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(commands.RoomRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewLoyaltyRepository,
			fx.As(new(commands.LoyaltyRepository)),
		),
		fx.Annotate(
			repository.NewInvoiceRepository,
			fx.As(new(commands.InvoiceRepository)),
		),
		fx.Annotate(
			repository.NewAmenityRepository,
			fx.As(new(commands.AmenityRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)
