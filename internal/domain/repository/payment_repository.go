package repository

import "github.com/jhoicas/rental-fleet-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
// Los pagos son inmutables: solo creación y lectura.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	GetByBooking(bookingID string) (*entity.Payment, error)
	List() ([]*entity.Payment, error)
}
