package dto

import "github.com/shopspring/decimal"

// CreateBookingRequest alta de reserva. El empleado sale del token de sesión.
type CreateBookingRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	VehicleID  string `json:"vehicle_id" validate:"required"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// BookingResponse representación de una reserva en respuestas.
type BookingResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	VehicleID  string          `json:"vehicle_id"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	Status     string          `json:"status"`
	EmployeeID string          `json:"employee_id"`
}

// QuoteResponse importe esperado de una reserva (días × tarifa congelada).
type QuoteResponse struct {
	BookingID string          `json:"booking_id"`
	Total     decimal.Decimal `json:"total"`
}
