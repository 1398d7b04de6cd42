// Package store decide una sola vez, al arrancar, qué backend de persistencia
// usa la sesión: PostgreSQL si la conexión abre, o el almacén en memoria con
// datos de muestra si no. La decisión dura todo el proceso; ninguna operación
// reintenta ni cambia de backend a mitad de sesión, y el resto de la
// aplicación recibe el conjunto de puertos ya resuelto.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/rental-fleet-api/internal/application/ledger"
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
	"github.com/jhoicas/rental-fleet-api/internal/infrastructure/memory"
	"github.com/jhoicas/rental-fleet-api/internal/infrastructure/postgres"
	"github.com/jhoicas/rental-fleet-api/pkg/config"
	"github.com/jhoicas/rental-fleet-api/pkg/logger"
)

// Nombres de backend para logs y el endpoint de salud.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Backend agrupa los puertos de persistencia ya atados a un almacén concreto.
type Backend struct {
	Name string

	Vehicles  repository.VehicleRepository
	Customers repository.CustomerRepository
	Bookings  repository.BookingRepository
	Payments  repository.PaymentRepository
	Users     repository.UserRepository
	Reports   repository.ReportRepository
	Tx        ledger.TxRunner

	closeFn func()
}

// Close libera los recursos del backend (el pool en el caso relacional).
func (b *Backend) Close() {
	if b.closeFn != nil {
		b.closeFn()
	}
}

// Open intenta abrir PostgreSQL y, ante cualquier fallo (conexión, migración o
// semilla), cae al almacén en memoria ya poblado. El error de conexión se
// registra como advertencia envolviendo ErrBackendUnavailable; nunca llega al
// llamador porque el modo degradado es parte del diseño.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) *Backend {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return fallback(log, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err))
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return fallback(log, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err))
	}
	if err := postgres.Seed(ctx, pool); err != nil {
		pool.Close()
		return fallback(log, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err))
	}

	log.Info().Str("backend", BackendPostgres).Msg("backend de persistencia listo")
	return &Backend{
		Name:      BackendPostgres,
		Vehicles:  postgres.NewVehicleRepository(pool),
		Customers: postgres.NewCustomerRepository(pool),
		Bookings:  postgres.NewBookingRepository(pool),
		Payments:  postgres.NewPaymentRepository(pool),
		Users:     postgres.NewUserRepository(pool),
		Reports:   postgres.NewReportRepository(pool),
		Tx:        postgres.NewTxRunner(pool),
		closeFn:   pool.Close,
	}
}

func fallback(log *logger.Logger, cause error) *Backend {
	log.Warn().Err(cause).Msg("PostgreSQL no disponible; la sesión continúa en memoria con datos de muestra")

	s := memory.NewStore()
	s.Seed()
	return &Backend{
		Name:      BackendMemory,
		Vehicles:  memory.NewVehicleRepository(s),
		Customers: memory.NewCustomerRepository(s),
		Bookings:  memory.NewBookingRepository(s),
		Payments:  memory.NewPaymentRepository(s),
		Users:     memory.NewUserRepository(s),
		Reports:   memory.NewReportRepository(s),
		Tx:        memory.NewTxRunner(s),
	}
}
