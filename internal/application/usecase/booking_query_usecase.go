package usecase

import (
	"github.com/jhoicas/rental-fleet-api/internal/application/dto"
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

// BookingQueryUseCase lecturas de reservas y pagos para las tablas de la
// interfaz. Solo lectura: toda mutación pasa por el núcleo de reservas.
type BookingQueryUseCase struct {
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
}

// NewBookingQueryUseCase construye el caso de uso con los puertos de lectura.
func NewBookingQueryUseCase(bookingRepo repository.BookingRepository, paymentRepo repository.PaymentRepository) *BookingQueryUseCase {
	return &BookingQueryUseCase{bookingRepo: bookingRepo, paymentRepo: paymentRepo}
}

// ListBookings devuelve todas las reservas.
func (uc *BookingQueryUseCase) ListBookings() ([]*dto.BookingResponse, error) {
	bookings, err := uc.bookingRepo.List()
	if err != nil {
		return nil, err
	}
	list := make([]*dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		list = append(list, BookingToResponse(b))
	}
	return list, nil
}

// GetBooking obtiene una reserva por ID.
func (uc *BookingQueryUseCase) GetBooking(id string) (*dto.BookingResponse, error) {
	booking, err := uc.bookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	return BookingToResponse(booking), nil
}

// ListPayments devuelve todos los pagos.
func (uc *BookingQueryUseCase) ListPayments() ([]*dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.List()
	if err != nil {
		return nil, err
	}
	list := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		list = append(list, PaymentToResponse(p))
	}
	return list, nil
}

// BookingToResponse convierte la entidad al DTO de respuesta.
func BookingToResponse(b *entity.Booking) *dto.BookingResponse {
	return &dto.BookingResponse{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		VehicleID:  b.VehicleID,
		StartDate:  b.StartDate.Format(dto.DateLayout),
		EndDate:    b.EndDate.Format(dto.DateLayout),
		DailyRate:  b.DailyRate,
		Status:     b.Status,
		EmployeeID: b.EmployeeID,
	}
}

// PaymentToResponse convierte la entidad al DTO de respuesta.
func PaymentToResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:          p.ID,
		BookingID:   p.BookingID,
		Amount:      p.Amount,
		Method:      p.Method,
		PaymentDate: p.PaymentDate.Format(dto.DateLayout),
	}
}
