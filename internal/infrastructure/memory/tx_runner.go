package memory

import (
	"context"

	"github.com/jhoicas/rental-fleet-api/internal/application/ledger"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner da al backend en memoria la misma garantía todo-o-nada que una
// transacción de PostgreSQL: toma el lock del Store durante todo el callback,
// guarda una copia de las tablas afectadas y la restaura si fn falla.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn bajo el lock del Store con repos que no vuelven a tomarlo.
// Si fn devuelve error, el estado previo se restaura íntegro.
func (r *TxRunner) Run(ctx context.Context, fn func(
	vehicleRepo repository.VehicleRepository,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.takeSnapshot()

	vehicleRepo := &VehicleRepo{s: r.s, inTx: true}
	bookingRepo := &BookingRepo{s: r.s, inTx: true}
	paymentRepo := &PaymentRepo{s: r.s, inTx: true}

	if err := fn(vehicleRepo, bookingRepo, paymentRepo); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
