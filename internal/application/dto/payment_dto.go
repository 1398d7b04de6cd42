package dto

import "github.com/shopspring/decimal"

// ProcessPaymentRequest registro del pago de una reserva activa.
type ProcessPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method" validate:"required"`
	PaymentDate string          `json:"payment_date" validate:"required,datetime=2006-01-02"`
}

// PaymentResponse representación de un pago en respuestas.
type PaymentResponse struct {
	ID          string          `json:"id"`
	BookingID   string          `json:"booking_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate string          `json:"payment_date"`
}
