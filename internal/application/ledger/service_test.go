package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rental-fleet-api/internal/application/ledger"
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fixture arma el núcleo sobre el backend en memoria con los datos de muestra.
type fixture struct {
	svc       *ledger.Service
	vehicles  *memory.VehicleRepo
	bookings  *memory.BookingRepo
	payments  *memory.PaymentRepo
	customers *memory.CustomerRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore()
	s.Seed()
	customers := memory.NewCustomerRepository(s)
	bookings := memory.NewBookingRepository(s)
	return &fixture{
		svc:       ledger.NewService(memory.NewTxRunner(s), customers, bookings),
		vehicles:  memory.NewVehicleRepository(s),
		bookings:  bookings,
		payments:  memory.NewPaymentRepository(s),
		customers: customers,
	}
}

func fecha(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// crearReserva crea una reserva válida de 7 días sobre V001 para C001.
func (f *fixture) crearReserva(t *testing.T) *entity.Booking {
	t.Helper()
	booking, err := f.svc.CreateBooking(context.Background(), ledger.CreateBookingInput{
		CustomerID: "C001",
		VehicleID:  "V001",
		StartDate:  fecha(t, "2025-03-01"),
		EndDate:    fecha(t, "2025-03-08"),
		EmployeeID: "employee",
	})
	require.NoError(t, err, "la reserva de muestra debe crearse")
	return booking
}

func (f *fixture) estadoVehiculo(t *testing.T, id string) string {
	t.Helper()
	v, err := f.vehicles.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, v, "el vehículo %s debe existir", id)
	return v.Status
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateBooking
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBooking_VehiculoPasaARented(t *testing.T) {
	f := newFixture(t)

	booking := f.crearReserva(t)

	assert.Equal(t, entity.BookingActive, booking.Status)
	assert.Equal(t, "C001", booking.CustomerID)
	assert.Equal(t, "employee", booking.EmployeeID)
	assert.NotEmpty(t, booking.ID, "el ID de la reserva lo genera el núcleo")
	assert.Equal(t, entity.VehicleRented, f.estadoVehiculo(t, "V001"),
		"crear la reserva debe dejar el vehículo Rented")
}

func TestCreateBooking_CongelaTarifaDiaria(t *testing.T) {
	f := newFixture(t)

	booking := f.crearReserva(t)
	require.True(t, booking.DailyRate.Equal(decimal.NewFromFloat(150.00)),
		"la reserva copia la tarifa vigente de V001")

	// Subir la tarifa del vehículo no toca la reserva ya creada.
	v, err := f.vehicles.GetByID("V001")
	require.NoError(t, err)
	v.DailyRate = decimal.NewFromFloat(999.99)
	require.NoError(t, f.vehicles.Update(v))

	stored, err := f.bookings.GetByID(booking.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.DailyRate.Equal(decimal.NewFromFloat(150.00)),
		"la tarifa congelada no cambia con el vehículo")
	assert.True(t, stored.Total().Equal(decimal.NewFromFloat(1050.00)),
		"7 días × 150.00 = 1050.00")
}

func TestCreateBooking_FechasInvalidas(t *testing.T) {
	f := newFixture(t)

	casos := []struct {
		nombre     string
		start, end string
	}{
		{"fin anterior al inicio", "2025-03-08", "2025-03-01"},
		{"fin igual al inicio", "2025-03-01", "2025-03-01"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := f.svc.CreateBooking(context.Background(), ledger.CreateBookingInput{
				CustomerID: "C001",
				VehicleID:  "V001",
				StartDate:  fecha(t, c.start),
				EndDate:    fecha(t, c.end),
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, entity.VehicleAvailable, f.estadoVehiculo(t, "V001"),
				"un alta fallida no debe tocar el vehículo")
		})
	}
}

func TestCreateBooking_ClienteInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), ledger.CreateBookingInput{
		CustomerID: "C999",
		VehicleID:  "V001",
		StartDate:  fecha(t, "2025-03-01"),
		EndDate:    fecha(t, "2025-03-08"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, entity.VehicleAvailable, f.estadoVehiculo(t, "V001"))
}

func TestCreateBooking_VehiculoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), ledger.CreateBookingInput{
		CustomerID: "C001",
		VehicleID:  "V999",
		StartDate:  fecha(t, "2025-03-01"),
		EndDate:    fecha(t, "2025-03-08"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBooking_VehiculoYaRentadoRechaza(t *testing.T) {
	f := newFixture(t)
	f.crearReserva(t)

	// Segunda reserva sobre el mismo vehículo, distinto cliente.
	_, err := f.svc.CreateBooking(context.Background(), ledger.CreateBookingInput{
		CustomerID: "C002",
		VehicleID:  "V001",
		StartDate:  fecha(t, "2025-04-01"),
		EndDate:    fecha(t, "2025-04-05"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"un vehículo Rented no admite otra reserva")

	list, err := f.bookings.List()
	require.NoError(t, err)
	assert.Len(t, list, 1, "la reserva rechazada no debe persistirse")
}

func TestCreateBooking_VehiculoEnMantenimientoRechaza(t *testing.T) {
	f := newFixture(t)

	// V005 está sembrado en Maintenance.
	_, err := f.svc.CreateBooking(context.Background(), ledger.CreateBookingInput{
		CustomerID: "C001",
		VehicleID:  "V005",
		StartDate:  fecha(t, "2025-03-01"),
		EndDate:    fecha(t, "2025-03-08"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, entity.VehicleMaintenance, f.estadoVehiculo(t, "V005"))
}

// ──────────────────────────────────────────────────────────────────────────────
// ProcessPayment
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessPayment_CompletaReservaYLiberaVehiculo(t *testing.T) {
	f := newFixture(t)
	booking := f.crearReserva(t)

	payment, err := f.svc.ProcessPayment(context.Background(), ledger.ProcessPaymentInput{
		BookingID:   booking.ID,
		Amount:      decimal.NewFromFloat(1050.00),
		Method:      entity.MethodCash,
		PaymentDate: fecha(t, "2025-03-08"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, booking.ID, payment.BookingID)

	stored, err := f.bookings.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCompleted, stored.Status)
	assert.Equal(t, entity.VehicleAvailable, f.estadoVehiculo(t, "V001"),
		"el pago devuelve el vehículo a Available")
}

func TestProcessPayment_SegundoPagoRechaza(t *testing.T) {
	f := newFixture(t)
	booking := f.crearReserva(t)

	in := ledger.ProcessPaymentInput{
		BookingID:   booking.ID,
		Amount:      decimal.NewFromFloat(1050.00),
		Method:      entity.MethodCreditCard,
		PaymentDate: fecha(t, "2025-03-08"),
	}
	_, err := f.svc.ProcessPayment(context.Background(), in)
	require.NoError(t, err)

	_, err = f.svc.ProcessPayment(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"una reserva Completed no admite otro pago")

	pagos, err := f.payments.List()
	require.NoError(t, err)
	assert.Len(t, pagos, 1, "el segundo intento no debe crear pago")
	assert.Equal(t, entity.VehicleAvailable, f.estadoVehiculo(t, "V001"))
}

func TestProcessPayment_EntradaInvalida(t *testing.T) {
	f := newFixture(t)
	booking := f.crearReserva(t)

	casos := []struct {
		nombre string
		amount decimal.Decimal
		method string
	}{
		{"método desconocido", decimal.NewFromFloat(100), "Cheque"},
		{"monto negativo", decimal.NewFromFloat(-1), entity.MethodCash},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := f.svc.ProcessPayment(context.Background(), ledger.ProcessPaymentInput{
				BookingID:   booking.ID,
				Amount:      c.amount,
				Method:      c.method,
				PaymentDate: fecha(t, "2025-03-08"),
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// La reserva sigue Active tras los intentos fallidos.
	stored, err := f.bookings.GetByID(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingActive, stored.Status)
	assert.Equal(t, entity.VehicleRented, f.estadoVehiculo(t, "V001"))
}

func TestProcessPayment_ReservaInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ProcessPayment(context.Background(), ledger.ProcessPaymentInput{
		BookingID:   "no-existe",
		Amount:      decimal.NewFromFloat(100),
		Method:      entity.MethodOnlinePayment,
		PaymentDate: fecha(t, "2025-03-08"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Tras pagar, el vehículo vuelve a estar reservable: el ciclo completo
// Available → Rented → Available puede repetirse sobre el mismo vehículo.
func TestCicloCompleto_VehiculoReutilizable(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		booking := f.crearReserva(t)
		_, err := f.svc.ProcessPayment(context.Background(), ledger.ProcessPaymentInput{
			BookingID:   booking.ID,
			Amount:      booking.Total(),
			Method:      entity.MethodCash,
			PaymentDate: fecha(t, "2025-03-08"),
		})
		require.NoError(t, err)
	}

	pagos, err := f.payments.List()
	require.NoError(t, err)
	assert.Len(t, pagos, 3)
	assert.Equal(t, entity.VehicleAvailable, f.estadoVehiculo(t, "V001"))
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteVehicle y Quote
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteVehicle_SinReservasElimina(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.DeleteVehicle(context.Background(), "V002"))

	v, err := f.vehicles.GetByID("V002")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDeleteVehicle_ConHistorialRechaza(t *testing.T) {
	f := newFixture(t)
	booking := f.crearReserva(t)

	// Con la reserva activa.
	err := f.svc.DeleteVehicle(context.Background(), "V001")
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Incluso completada: las reservas nunca se borran y retienen el vehículo.
	_, err = f.svc.ProcessPayment(context.Background(), ledger.ProcessPaymentInput{
		BookingID:   booking.ID,
		Amount:      booking.Total(),
		Method:      entity.MethodCash,
		PaymentDate: fecha(t, "2025-03-08"),
	})
	require.NoError(t, err)

	err = f.svc.DeleteVehicle(context.Background(), "V001")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteVehicle_Inexistente(t *testing.T) {
	f := newFixture(t)
	err := f.svc.DeleteVehicle(context.Background(), "V999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuote_DiasPorTarifaCongelada(t *testing.T) {
	f := newFixture(t)
	booking := f.crearReserva(t)

	total, err := f.svc.Quote(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(1050.00)),
		"7 días × 150.00; got %s", total)

	_, err = f.svc.Quote(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
