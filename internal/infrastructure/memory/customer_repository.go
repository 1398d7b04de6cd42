package memory

import (
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	s *Store
}

// NewCustomerRepository construye el adaptador sobre el Store.
func NewCustomerRepository(s *Store) *CustomerRepo {
	return &CustomerRepo{s: s}
}

// Create agrega un cliente. Devuelve ErrDuplicate si el ID ya existe.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if indexCustomer(r.s.customers, customer.ID) >= 0 {
		return domain.ErrDuplicate
	}
	r.s.customers = append(r.s.customers, *customer)
	return nil
}

// GetByID devuelve una copia del cliente, o (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := indexCustomer(r.s.customers, id)
	if i < 0 {
		return nil, nil
	}
	c := r.s.customers[i]
	return &c, nil
}

// List devuelve copias de todos los clientes en orden de inserción.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Customer, 0, len(r.s.customers))
	for i := range r.s.customers {
		c := r.s.customers[i]
		list = append(list, &c)
	}
	return list, nil
}

// Delete elimina el cliente por ID. Devuelve ErrConflict si alguna reserva lo referencia.
func (r *CustomerRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexCustomer(r.s.customers, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	for j := range r.s.bookings {
		if r.s.bookings[j].CustomerID == id {
			return domain.ErrConflict
		}
	}
	r.s.customers = append(r.s.customers[:i], r.s.customers[i+1:]...)
	return nil
}

func indexCustomer(customers []entity.Customer, id string) int {
	for i := range customers {
		if customers[i].ID == id {
			return i
		}
	}
	return -1
}
