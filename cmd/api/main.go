package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/rental-fleet-api/internal/application/auth"
	"github.com/jhoicas/rental-fleet-api/internal/application/ledger"
	"github.com/jhoicas/rental-fleet-api/internal/application/reports"
	"github.com/jhoicas/rental-fleet-api/internal/application/usecase"
	"github.com/jhoicas/rental-fleet-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/rental-fleet-api/internal/interfaces/http"
	"github.com/jhoicas/rental-fleet-api/pkg/config"
	"github.com/jhoicas/rental-fleet-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// La elección de backend ocurre una sola vez aquí: PostgreSQL si abre,
	// memoria con datos de muestra si no. Nunca se reintenta ni se cambia
	// durante la sesión.
	backend := store.Open(ctx, cfg.DB, log)
	defer backend.Close()

	ledgerSvc := ledger.NewService(backend.Tx, backend.Customers, backend.Bookings)
	vehicleUC := usecase.NewVehicleUseCase(backend.Vehicles)
	customerUC := usecase.NewCustomerUseCase(backend.Customers)
	userUC := usecase.NewUserUseCase(backend.Users)
	bookingQueryUC := usecase.NewBookingQueryUseCase(backend.Bookings, backend.Payments)
	dashboardUC := reports.NewDashboardUseCase(backend.Reports)
	authUC := auth.NewAuthUseCase(backend.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Rental Fleet API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "backend": backend.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		VehicleUC:    vehicleUC,
		CustomerUC:   customerUC,
		UserUC:       userUC,
		BookingQuery: bookingQueryUC,
		Ledger:       ledgerSvc,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
