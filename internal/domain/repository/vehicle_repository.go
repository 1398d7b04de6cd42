package repository

import "github.com/jhoicas/rental-fleet-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para Vehicle (DIP).
// GetByID devuelve (nil, nil) si el vehículo no existe.
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id string) (*entity.Vehicle, error)
	List() ([]*entity.Vehicle, error)
	Update(vehicle *entity.Vehicle) error
	Delete(id string) error
}
