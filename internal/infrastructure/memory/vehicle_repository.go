package memory

import (
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación en memoria de VehicleRepository.
// inTx indica que el TxRunner ya tiene el lock del Store.
type VehicleRepo struct {
	s    *Store
	inTx bool
}

// NewVehicleRepository construye el adaptador sobre el Store.
func NewVehicleRepository(s *Store) *VehicleRepo {
	return &VehicleRepo{s: s}
}

// Create agrega un vehículo. Devuelve ErrDuplicate si el ID ya existe.
func (r *VehicleRepo) Create(vehicle *entity.Vehicle) error {
	if !r.inTx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if indexVehicle(r.s.vehicles, vehicle.ID) >= 0 {
		return domain.ErrDuplicate
	}
	r.s.vehicles = append(r.s.vehicles, *vehicle)
	return nil
}

// GetByID devuelve una copia del vehículo, o (nil, nil) si no existe.
func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	i := indexVehicle(r.s.vehicles, id)
	if i < 0 {
		return nil, nil
	}
	v := r.s.vehicles[i]
	return &v, nil
}

// List devuelve copias de todos los vehículos en orden de inserción.
func (r *VehicleRepo) List() ([]*entity.Vehicle, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	list := make([]*entity.Vehicle, 0, len(r.s.vehicles))
	for i := range r.s.vehicles {
		v := r.s.vehicles[i]
		list = append(list, &v)
	}
	return list, nil
}

// Update reemplaza el vehículo con el mismo ID.
func (r *VehicleRepo) Update(vehicle *entity.Vehicle) error {
	if !r.inTx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	i := indexVehicle(r.s.vehicles, vehicle.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.vehicles[i] = *vehicle
	return nil
}

// Delete elimina el vehículo por ID. Devuelve ErrConflict si alguna reserva
// lo referencia (mismo comportamiento que la clave foránea del esquema SQL).
func (r *VehicleRepo) Delete(id string) error {
	if !r.inTx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	i := indexVehicle(r.s.vehicles, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	for j := range r.s.bookings {
		if r.s.bookings[j].VehicleID == id {
			return domain.ErrConflict
		}
	}
	r.s.vehicles = append(r.s.vehicles[:i], r.s.vehicles[i+1:]...)
	return nil
}

func indexVehicle(vehicles []entity.Vehicle, id string) int {
	for i := range vehicles {
		if vehicles[i].ID == id {
			return i
		}
	}
	return -1
}
