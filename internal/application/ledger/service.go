// Package ledger contiene el núcleo del libro de alquileres: el único
// componente con lógica real del sistema. Mantiene consistentes entre sí
// Vehicle.Status, Booking.Status y los registros de Payment mientras se crean
// y cobran reservas, con el mismo comportamiento observable sobre cualquiera
// de los dos backends de persistencia.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Service aplica las reglas del libro de alquileres.
//
// CreateBooking y ProcessPayment leen un estado y luego lo escriben, así que
// cada una es una sección crítica sobre el par vehículo/reserva que toca: el
// mutex serializa las operaciones del núcleo entre sí y el TxRunner garantiza
// que cada una se aplica completa o no se aplica.
type Service struct {
	mu           sync.Mutex
	tx           TxRunner
	customerRepo repository.CustomerRepository
	bookingRepo  repository.BookingRepository
}

// NewService construye el núcleo con el runner transaccional y los puertos de
// solo lectura que necesita fuera de transacción.
func NewService(tx TxRunner, customerRepo repository.CustomerRepository, bookingRepo repository.BookingRepository) *Service {
	return &Service{tx: tx, customerRepo: customerRepo, bookingRepo: bookingRepo}
}

// CreateBookingInput parámetros para crear una reserva.
type CreateBookingInput struct {
	CustomerID string
	VehicleID  string
	StartDate  time.Time
	EndDate    time.Time
	EmployeeID string
}

// CreateBooking crea una reserva Active sobre un vehículo Available y lo marca
// Rented, copiando la tarifa diaria vigente en la reserva. La tarifa queda
// congelada: cambios posteriores en el vehículo no la alteran.
//
// Errores: ErrInvalidInput si EndDate no es posterior a StartDate,
// ErrNotFound si cliente o vehículo no existen, ErrConflict si el vehículo no
// está Available. Ante cualquier error no se muta ningún campo.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (*entity.Booking, error) {
	if !in.EndDate.After(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}

	customer, err := s.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var booking *entity.Booking
	err = s.tx.Run(ctx, func(
		vehicleRepo repository.VehicleRepository,
		bookingRepo repository.BookingRepository,
		_ repository.PaymentRepository,
	) error {
		vehicle, err := vehicleRepo.GetByID(in.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransitionVehicle(vehicle.Status, entity.VehicleRented) {
			return domain.ErrConflict
		}

		booking = &entity.Booking{
			ID:         uuid.NewString(),
			CustomerID: in.CustomerID,
			VehicleID:  in.VehicleID,
			StartDate:  in.StartDate,
			EndDate:    in.EndDate,
			DailyRate:  vehicle.DailyRate,
			Status:     entity.BookingActive,
			EmployeeID: in.EmployeeID,
		}
		if err := bookingRepo.Create(booking); err != nil {
			return err
		}

		vehicle.Status = entity.VehicleRented
		return vehicleRepo.Update(vehicle)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// ProcessPaymentInput parámetros para registrar el pago de una reserva.
type ProcessPaymentInput struct {
	BookingID   string
	Amount      decimal.Decimal
	Method      string
	PaymentDate time.Time
}

// ProcessPayment registra el único pago de una reserva Active, la marca
// Completed y devuelve el vehículo a Available.
//
// El monto lo calcula el llamador (días × tarifa); el núcleo no lo recalcula
// ni lo valida contra la reserva, igual que el sistema original. Quote expone
// el importe esperado para quien quiera calcularlo.
//
// Errores: ErrInvalidInput si el método no es válido o el monto es negativo,
// ErrNotFound si la reserva no existe, ErrConflict si la reserva no está
// Active (un segundo pago sobre la misma reserva siempre falla así). Ante
// cualquier error no se crea pago ni se muta ningún estado.
func (s *Service) ProcessPayment(ctx context.Context, in ProcessPaymentInput) (*entity.Payment, error) {
	if !entity.ValidMethod(in.Method) || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var payment *entity.Payment
	err := s.tx.Run(ctx, func(
		vehicleRepo repository.VehicleRepository,
		bookingRepo repository.BookingRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		booking, err := bookingRepo.GetByID(in.BookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return domain.ErrNotFound
		}
		if !entity.CanTransitionBooking(booking.Status, entity.BookingCompleted) {
			return domain.ErrConflict
		}

		payment = &entity.Payment{
			ID:          uuid.NewString(),
			BookingID:   booking.ID,
			Amount:      in.Amount,
			Method:      in.Method,
			PaymentDate: in.PaymentDate,
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}

		booking.Status = entity.BookingCompleted
		if err := bookingRepo.Update(booking); err != nil {
			return err
		}

		vehicle, err := vehicleRepo.GetByID(booking.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return domain.ErrNotFound
		}
		if vehicle.Status == entity.VehicleRented {
			vehicle.Status = entity.VehicleAvailable
			return vehicleRepo.Update(vehicle)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// DeleteVehicle elimina un vehículo de la flota. Se rechaza con ErrConflict
// si alguna reserva lo referencia: una Active quedaría apuntando a la nada, y
// las reservas nunca se borran, así que el historial también lo retiene (igual
// que la clave foránea del esquema relacional).
func (s *Service) DeleteVehicle(ctx context.Context, vehicleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tx.Run(ctx, func(
		vehicleRepo repository.VehicleRepository,
		bookingRepo repository.BookingRepository,
		_ repository.PaymentRepository,
	) error {
		vehicle, err := vehicleRepo.GetByID(vehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return domain.ErrNotFound
		}
		referencing, err := bookingRepo.ListByVehicle(vehicleID, "")
		if err != nil {
			return err
		}
		if len(referencing) > 0 {
			return domain.ErrConflict
		}
		return vehicleRepo.Delete(vehicleID)
	})
}

// Quote devuelve el importe esperado de una reserva (días × tarifa congelada).
// Solo lectura; no muta estado.
func (s *Service) Quote(ctx context.Context, bookingID string) (decimal.Decimal, error) {
	booking, err := s.bookingRepo.GetByID(bookingID)
	if err != nil {
		return decimal.Zero, err
	}
	if booking == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	return booking.Total(), nil
}
