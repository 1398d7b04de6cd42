package ledger

import (
	"context"

	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

// TxRunner ejecuta una función con garantía todo-o-nada sobre los repositorios
// que el núcleo de reservas muta. El backend relacional lo implementa con una
// transacción; el backend en memoria con lock + snapshot. Si fn devuelve
// error, ningún cambio queda aplicado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		vehicleRepo repository.VehicleRepository,
		bookingRepo repository.BookingRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
