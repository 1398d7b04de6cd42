package usecase

import (
	"github.com/jhoicas/rental-fleet-api/internal/application/dto"
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

// VehicleUseCase aplica reglas de negocio para la flota.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso con el puerto de persistencia.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Add da de alta un vehículo en estado Available.
// Devuelve ErrInvalidInput si la categoría no existe o la tarifa es negativa,
// ErrDuplicate si el ID ya está en uso.
func (uc *VehicleUseCase) Add(in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if !entity.ValidCategory(in.Category) || in.DailyRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	vehicle := &entity.Vehicle{
		ID:        in.ID,
		Brand:     in.Brand,
		Model:     in.Model,
		Category:  in.Category,
		DailyRate: in.DailyRate,
		Status:    entity.VehicleAvailable,
	}
	if err := uc.repo.Create(vehicle); err != nil {
		return nil, err
	}
	return vehicleToResponse(vehicle), nil
}

// Update edita un vehículo existente. El operador puede alternar el estado
// entre Available y Maintenance; Rented pertenece al flujo de reserva y aquí
// se rechaza con ErrConflict (entrar o salir de él a mano rompería el libro).
func (uc *VehicleUseCase) Update(id string, in dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	if !entity.ValidCategory(in.Category) || !entity.ValidVehicleStatus(in.Status) || in.DailyRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != vehicle.Status {
		if vehicle.Status == entity.VehicleRented || in.Status == entity.VehicleRented {
			return nil, domain.ErrConflict
		}
	}
	vehicle.Brand = in.Brand
	vehicle.Model = in.Model
	vehicle.Category = in.Category
	vehicle.DailyRate = in.DailyRate
	vehicle.Status = in.Status
	if err := uc.repo.Update(vehicle); err != nil {
		return nil, err
	}
	return vehicleToResponse(vehicle), nil
}

// GetByID obtiene un vehículo.
func (uc *VehicleUseCase) GetByID(id string) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	return vehicleToResponse(vehicle), nil
}

// List devuelve toda la flota.
func (uc *VehicleUseCase) List() ([]*dto.VehicleResponse, error) {
	vehicles, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	list := make([]*dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		list = append(list, vehicleToResponse(v))
	}
	return list, nil
}

func vehicleToResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:        v.ID,
		Brand:     v.Brand,
		Model:     v.Model,
		Category:  v.Category,
		DailyRate: v.DailyRate,
		Status:    v.Status,
	}
}
