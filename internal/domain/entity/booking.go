package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una reserva.
const (
	BookingActive    = "Active"    // vehículo retenido por el cliente
	BookingCompleted = "Completed" // pago registrado; estado terminal
	BookingCancelled = "Cancelled" // reservado para una futura operación de cancelación
)

// Booking representa una reserva de vehículo. DailyRate es una copia de la
// tarifa del vehículo al momento de crear la reserva: cambios posteriores de
// tarifa no la afectan.
type Booking struct {
	ID         string // UUID generado al crear
	CustomerID string
	VehicleID  string
	StartDate  time.Time
	EndDate    time.Time // siempre posterior a StartDate
	DailyRate  decimal.Decimal
	Status     string // ver constantes Booking*
	EmployeeID string // operador que creó la reserva
}

// allowBookingTransition define el grafo de estados de la reserva.
// Completed y Cancelled son terminales. La transición a Cancelled existe en el
// grafo pero ninguna operación del núcleo la dispara todavía.
var allowBookingTransition = map[string][]string{
	BookingActive:    {BookingCompleted, BookingCancelled},
	BookingCompleted: {},
	BookingCancelled: {},
}

// CanTransitionBooking indica si from -> to es un cambio de estado permitido.
func CanTransitionBooking(from, to string) bool {
	for _, s := range allowBookingTransition[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Days devuelve la duración de la reserva en días enteros.
func (b *Booking) Days() int64 {
	return int64(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// Total devuelve el importe esperado de la reserva (días × tarifa diaria).
// Es informativo: el núcleo no valida el monto pagado contra este valor.
func (b *Booking) Total() decimal.Decimal {
	return b.DailyRate.Mul(decimal.NewFromInt(b.Days()))
}
