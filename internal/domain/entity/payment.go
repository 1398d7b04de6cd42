package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago admitidos (cadenas de presentación del sistema original).
const (
	MethodCash          = "Cash"
	MethodCreditCard    = "Credit Card"
	MethodOnlinePayment = "Online Payment"
)

// Payment representa el pago único de una reserva completada. Inmutable.
type Payment struct {
	ID          string // UUID generado al crear
	BookingID   string
	Amount      decimal.Decimal
	Method      string // ver constantes Method*
	PaymentDate time.Time
}

// ValidMethod indica si el método de pago es uno de los admitidos.
func ValidMethod(m string) bool {
	switch m {
	case MethodCash, MethodCreditCard, MethodOnlinePayment:
		return true
	}
	return false
}
