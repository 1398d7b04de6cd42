package memory

import (
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación en memoria de PaymentRepository.
// inTx indica que el TxRunner ya tiene el lock del Store.
type PaymentRepo struct {
	s    *Store
	inTx bool
}

// NewPaymentRepository construye el adaptador sobre el Store.
func NewPaymentRepository(s *Store) *PaymentRepo {
	return &PaymentRepo{s: s}
}

// Create agrega un pago. Devuelve ErrDuplicate si el ID ya existe.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	if !r.inTx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	for i := range r.s.payments {
		if r.s.payments[i].ID == payment.ID {
			return domain.ErrDuplicate
		}
	}
	r.s.payments = append(r.s.payments, *payment)
	return nil
}

// GetByID devuelve una copia del pago, o (nil, nil) si no existe.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	for i := range r.s.payments {
		if r.s.payments[i].ID == id {
			p := r.s.payments[i]
			return &p, nil
		}
	}
	return nil, nil
}

// GetByBooking devuelve el pago de la reserva, o (nil, nil) si no existe.
func (r *PaymentRepo) GetByBooking(bookingID string) (*entity.Payment, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	for i := range r.s.payments {
		if r.s.payments[i].BookingID == bookingID {
			p := r.s.payments[i]
			return &p, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todos los pagos en orden de inserción.
func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	list := make([]*entity.Payment, 0, len(r.s.payments))
	for i := range r.s.payments {
		p := r.s.payments[i]
		list = append(list, &p)
	}
	return list, nil
}
