package repository

import "github.com/jhoicas/rental-fleet-api/internal/domain/entity"

// BookingRepository define el puerto de persistencia para Booking.
// Las reservas nunca se borran en los flujos del núcleo; no hay Delete.
type BookingRepository interface {
	Create(booking *entity.Booking) error
	GetByID(id string) (*entity.Booking, error)
	List() ([]*entity.Booking, error)
	// ListByVehicle devuelve las reservas que referencian al vehículo,
	// opcionalmente filtradas por estado (status vacío = todas).
	ListByVehicle(vehicleID, status string) ([]*entity.Booking, error)
	Update(booking *entity.Booking) error
}
