package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelier/internal/domain/user"
	"hotelier/internal/handler/api"
	"hotelier/internal/handler/middleware"
	"hotelier/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Customer *api.CustomerHandler
	Room     *api.RoomHandler
	Invoice  *api.InvoiceHandler
	Loyalty  *api.LoyaltyHandler
	Amenity  *api.AmenityHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, ownership *middleware.OwnershipMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware, ownership)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, ownership *middleware.OwnershipMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireRoleAtLeast(user.RoleReceptionist)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.GetByID},
			})

			roomsAdmin := rooms.Group("")
			roomsAdmin.Use(authMiddleware.RequireAuth(), admin)
			addRoutes(roomsAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Room.SetStatus},
				{Method: http.MethodPut, Path: "/:id/rate", Handler: h.Room.SetNightlyRate},
			})
		}

		roomTypes := apiGroup.Group("/room-types")
		{
			addRoutes(roomTypes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListTypes},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.GetTypeByID},
			})

			typesAdmin := roomTypes.Group("")
			typesAdmin.Use(authMiddleware.RequireAuth(), admin)
			addRoutes(typesAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Room.CreateType},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth(), ownership.ResolveCustomer())
		{
			self := ownership.RequireCustomerSelf()
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.GetByID, Mw: []gin.HandlerFunc{self}},
				{Method: http.MethodGet, Path: "/:id/points", Handler: h.Loyalty.Balance, Mw: []gin.HandlerFunc{self}},
				{Method: http.MethodGet, Path: "/:id/points/history", Handler: h.Loyalty.History, Mw: []gin.HandlerFunc{self}},
			})

			customersStaff := customers.Group("")
			customersStaff.Use(staff)
			addRoutes(customersStaff, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Register},
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Customer.Update},
				{Method: http.MethodPost, Path: "/:id/points/redeem", Handler: h.Loyalty.Redeem},
			})

			customersAdmin := customers.Group("")
			customersAdmin.Use(admin)
			addRoutes(customersAdmin, []route{
				{Method: http.MethodPost, Path: "/:id/points/accrue", Handler: h.Loyalty.Accrue},
				{Method: http.MethodPost, Path: "/:id/points/reconcile", Handler: h.Loyalty.Reconcile},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth(), ownership.ResolveCustomer())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetByID},
			})

			bookingsStaff := bookings.Group("")
			bookingsStaff.Use(staff)
			addRoutes(bookingsStaff, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Booking.CheckIn},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Booking.CheckOut},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/services", Handler: h.Booking.AddService},
			})
		}

		invoices := apiGroup.Group("/invoices")
		invoices.Use(authMiddleware.RequireAuth(), ownership.ResolveCustomer())
		{
			addRoutes(invoices, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Invoice.GetByID},
			})

			invoicesStaff := invoices.Group("")
			invoicesStaff.Use(staff)
			addRoutes(invoicesStaff, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Invoice.List},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: h.Invoice.RecordPayment},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Amenity.ListServices},
			})

			servicesAdmin := services.Group("")
			servicesAdmin.Use(authMiddleware.RequireAuth(), admin)
			addRoutes(servicesAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Amenity.CreateService},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
