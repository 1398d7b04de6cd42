package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rental-fleet-api/internal/application/auth"
	"github.com/jhoicas/rental-fleet-api/internal/application/ledger"
	"github.com/jhoicas/rental-fleet-api/internal/application/reports"
	"github.com/jhoicas/rental-fleet-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	VehicleUC    *usecase.VehicleUseCase
	CustomerUC   *usecase.CustomerUseCase
	UserUC       *usecase.UserUseCase
	BookingQuery *usecase.BookingQueryUseCase
	Ledger       *ledger.Service
	DashboardUC  *reports.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Vehicles (protegido)
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC, deps.Ledger)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Delete("/:id", customerHandler.Delete)

	// Bookings y pagos (protegido)
	bookings := protected.Group("/bookings")
	bookingHandler := NewBookingHandler(deps.Ledger, deps.BookingQuery)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.List)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Get("/:id/quote", bookingHandler.Quote)
	bookings.Post("/:id/payments", bookingHandler.ProcessPayment)
	protected.Get("/payments", bookingHandler.ListPayments)

	// Users (protegido, solo Admin)
	users := protected.Group("/users", AdminOnly())
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Delete("/:username", userHandler.Delete)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.DashboardUC)
	reportsGroup.Get("/charts", reportHandler.Charts)
	reportsGroup.Get("/summary", reportHandler.Summary)
}
