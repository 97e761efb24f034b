package components

import (
	"hotelier/internal/handler"
	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCustomerHandler,
		api.NewRoomHandler,
		api.NewInvoiceHandler,
		api.NewLoyaltyHandler,
		api.NewAmenityHandler,
		middleware.NewAuthMiddleware,
		func(customerQueries queries.CustomerQueries) *middleware.OwnershipMiddleware {
			return middleware.NewOwnershipMiddleware(customerQueries)
		},
		func(
			auth *api.AuthHandler,
			booking *api.BookingHandler,
			customer *api.CustomerHandler,
			room *api.RoomHandler,
			invoice *api.InvoiceHandler,
			loyalty *api.LoyaltyHandler,
			amenity *api.AmenityHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:     auth,
				Booking:  booking,
				Customer: customer,
				Room:     room,
				Invoice:  invoice,
				Loyalty:  loyalty,
				Amenity:  amenity,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
