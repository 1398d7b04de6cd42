package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
	"github.com/jhoicas/rental-fleet-api/internal/infrastructure/memory"
)

func seededStore() *memory.Store {
	s := memory.NewStore()
	s.Seed()
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Semilla y orden de listado
// ──────────────────────────────────────────────────────────────────────────────

func TestSeed_DatasetInicial(t *testing.T) {
	s := seededStore()

	vehicles, err := memory.NewVehicleRepository(s).List()
	require.NoError(t, err)
	require.Len(t, vehicles, 5)
	// Orden de inserción estable, como el listado del backend relacional.
	assert.Equal(t, "V001", vehicles[0].ID)
	assert.Equal(t, "V005", vehicles[4].ID)
	assert.Equal(t, entity.VehicleMaintenance, vehicles[4].Status,
		"V005 se siembra fuera de servicio")

	customers, err := memory.NewCustomerRepository(s).List()
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "John Apple", customers[0].Name)

	users, err := memory.NewUserRepository(s).List()
	require.NoError(t, err)
	require.Len(t, users, 2)

	admin, err := memory.NewUserRepository(s).GetByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento de copias
// ──────────────────────────────────────────────────────────────────────────────

func TestVehicleRepo_LecturasDevuelvenCopias(t *testing.T) {
	s := seededStore()
	repo := memory.NewVehicleRepository(s)

	v, err := repo.GetByID("V001")
	require.NoError(t, err)
	require.NotNil(t, v)

	// Mutar la copia no toca el Store.
	v.Status = entity.VehicleRented
	v.DailyRate = decimal.NewFromInt(1)

	fresh, err := repo.GetByID("V001")
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleAvailable, fresh.Status)
	assert.True(t, fresh.DailyRate.Equal(decimal.NewFromFloat(150.00)))
}

func TestVehicleRepo_GetInexistenteDevuelveNilNil(t *testing.T) {
	repo := memory.NewVehicleRepository(seededStore())
	v, err := repo.GetByID("V999")
	require.NoError(t, err)
	assert.Nil(t, v, "mismo contrato que el repo relacional: (nil, nil)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Duplicados y borrados
// ──────────────────────────────────────────────────────────────────────────────

func TestVehicleRepo_CreateDuplicado(t *testing.T) {
	repo := memory.NewVehicleRepository(seededStore())
	err := repo.Create(&entity.Vehicle{ID: "V001", Brand: "Otro", Model: "X", Category: entity.CategoryCar, Status: entity.VehicleAvailable})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerRepo_CreateDuplicado(t *testing.T) {
	repo := memory.NewCustomerRepository(seededStore())
	err := repo.Create(&entity.Customer{ID: "C001", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserRepo_CreateDuplicado(t *testing.T) {
	repo := memory.NewUserRepository(seededStore())
	err := repo.Create(&entity.User{Username: "admin", Password: "x", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestVehicleRepo_DeleteConReservaRechaza(t *testing.T) {
	s := seededStore()
	bookings := memory.NewBookingRepository(s)
	require.NoError(t, bookings.Create(&entity.Booking{
		ID: "b1", CustomerID: "C001", VehicleID: "V001",
		StartDate: time.Now(), EndDate: time.Now().AddDate(0, 0, 2),
		DailyRate: decimal.NewFromInt(150), Status: entity.BookingCompleted,
	}))

	repo := memory.NewVehicleRepository(s)
	assert.ErrorIs(t, repo.Delete("V001"), domain.ErrConflict,
		"el historial retiene al vehículo, como la clave foránea SQL")
	assert.ErrorIs(t, repo.Delete("V999"), domain.ErrNotFound)
	assert.NoError(t, repo.Delete("V002"))
}

func TestCustomerRepo_DeleteConReservaRechaza(t *testing.T) {
	s := seededStore()
	bookings := memory.NewBookingRepository(s)
	require.NoError(t, bookings.Create(&entity.Booking{
		ID: "b1", CustomerID: "C001", VehicleID: "V001",
		StartDate: time.Now(), EndDate: time.Now().AddDate(0, 0, 2),
		DailyRate: decimal.NewFromInt(150), Status: entity.BookingActive,
	}))

	repo := memory.NewCustomerRepository(s)
	assert.ErrorIs(t, repo.Delete("C001"), domain.ErrConflict)
	assert.NoError(t, repo.Delete("C002"))
}

// ──────────────────────────────────────────────────────────────────────────────
// ListByVehicle
// ──────────────────────────────────────────────────────────────────────────────

func TestBookingRepo_ListByVehicle(t *testing.T) {
	s := seededStore()
	repo := memory.NewBookingRepository(s)

	mk := func(id, vehicleID, status string) {
		require.NoError(t, repo.Create(&entity.Booking{
			ID: id, CustomerID: "C001", VehicleID: vehicleID,
			StartDate: time.Now(), EndDate: time.Now().AddDate(0, 0, 1),
			DailyRate: decimal.NewFromInt(100), Status: status,
		}))
	}
	mk("b1", "V001", entity.BookingActive)
	mk("b2", "V001", entity.BookingCompleted)
	mk("b3", "V002", entity.BookingActive)

	todas, err := repo.ListByVehicle("V001", "")
	require.NoError(t, err)
	assert.Len(t, todas, 2, "sin filtro de estado devuelve todo el historial del vehículo")

	activas, err := repo.ListByVehicle("V001", entity.BookingActive)
	require.NoError(t, err)
	require.Len(t, activas, 1)
	assert.Equal(t, "b1", activas[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner: todo-o-nada
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_RestauraEstadoSiFnFalla(t *testing.T) {
	s := seededStore()
	runner := memory.NewTxRunner(s)

	boom := errors.New("boom")
	err := runner.Run(context.Background(), func(
		vehicleRepo repository.VehicleRepository,
		bookingRepo repository.BookingRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		v, err := vehicleRepo.GetByID("V001")
		require.NoError(t, err)
		v.Status = entity.VehicleRented
		require.NoError(t, vehicleRepo.Update(v))
		require.NoError(t, bookingRepo.Create(&entity.Booking{
			ID: "b1", CustomerID: "C001", VehicleID: "V001",
			StartDate: time.Now(), EndDate: time.Now().AddDate(0, 0, 1),
			DailyRate: decimal.NewFromInt(150), Status: entity.BookingActive,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nada de lo escrito dentro del callback sobrevive.
	v, err := memory.NewVehicleRepository(s).GetByID("V001")
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleAvailable, v.Status)

	bookings, err := memory.NewBookingRepository(s).List()
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestTxRunner_AplicaEstadoSiFnTermina(t *testing.T) {
	s := seededStore()
	runner := memory.NewTxRunner(s)

	err := runner.Run(context.Background(), func(
		vehicleRepo repository.VehicleRepository,
		bookingRepo repository.BookingRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		return paymentRepo.Create(&entity.Payment{
			ID: "p1", BookingID: "b1",
			Amount: decimal.NewFromInt(100), Method: entity.MethodCash,
			PaymentDate: time.Now(),
		})
	})
	require.NoError(t, err)

	pagos, err := memory.NewPaymentRepository(s).List()
	require.NoError(t, err)
	assert.Len(t, pagos, 1)
}

func TestTxRunner_ContextoCancelado(t *testing.T) {
	runner := memory.NewTxRunner(seededStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx, func(
		repository.VehicleRepository, repository.BookingRepository, repository.PaymentRepository,
	) error {
		t.Fatal("fn no debe ejecutarse con contexto cancelado")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
