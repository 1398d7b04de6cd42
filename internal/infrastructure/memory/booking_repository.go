package memory

import (
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación en memoria de BookingRepository.
// inTx indica que el TxRunner ya tiene el lock del Store.
type BookingRepo struct {
	s    *Store
	inTx bool
}

// NewBookingRepository construye el adaptador sobre el Store.
func NewBookingRepository(s *Store) *BookingRepo {
	return &BookingRepo{s: s}
}

// Create agrega una reserva. Devuelve ErrDuplicate si el ID ya existe.
func (r *BookingRepo) Create(booking *entity.Booking) error {
	if !r.inTx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if indexBooking(r.s.bookings, booking.ID) >= 0 {
		return domain.ErrDuplicate
	}
	r.s.bookings = append(r.s.bookings, *booking)
	return nil
}

// GetByID devuelve una copia de la reserva, o (nil, nil) si no existe.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	i := indexBooking(r.s.bookings, id)
	if i < 0 {
		return nil, nil
	}
	b := r.s.bookings[i]
	return &b, nil
}

// List devuelve copias de todas las reservas en orden de inserción.
func (r *BookingRepo) List() ([]*entity.Booking, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	list := make([]*entity.Booking, 0, len(r.s.bookings))
	for i := range r.s.bookings {
		b := r.s.bookings[i]
		list = append(list, &b)
	}
	return list, nil
}

// ListByVehicle devuelve las reservas del vehículo, opcionalmente filtradas por estado.
func (r *BookingRepo) ListByVehicle(vehicleID, status string) ([]*entity.Booking, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	var list []*entity.Booking
	for i := range r.s.bookings {
		b := r.s.bookings[i]
		if b.VehicleID != vehicleID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		list = append(list, &b)
	}
	return list, nil
}

// Update reemplaza la reserva con el mismo ID.
func (r *BookingRepo) Update(booking *entity.Booking) error {
	if !r.inTx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	i := indexBooking(r.s.bookings, booking.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.bookings[i] = *booking
	return nil
}

func indexBooking(bookings []entity.Booking, id string) int {
	for i := range bookings {
		if bookings[i].ID == id {
			return i
		}
	}
	return -1
}
