package dto

import "github.com/shopspring/decimal"

// CreateVehicleRequest alta de vehículo. El ID lo asigna el operador.
type CreateVehicleRequest struct {
	ID        string          `json:"id" validate:"required"`
	Brand     string          `json:"brand" validate:"required"`
	Model     string          `json:"model" validate:"required"`
	Category  string          `json:"category" validate:"required"`
	DailyRate decimal.Decimal `json:"daily_rate"`
}

// UpdateVehicleRequest edición de vehículo por el operador. Status permite
// alternar entre Available y Maintenance; Rented solo lo fija el flujo de reserva.
type UpdateVehicleRequest struct {
	Brand     string          `json:"brand" validate:"required"`
	Model     string          `json:"model" validate:"required"`
	Category  string          `json:"category" validate:"required"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Status    string          `json:"status" validate:"required"`
}

// VehicleResponse representación de un vehículo en respuestas.
type VehicleResponse struct {
	ID        string          `json:"id"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Category  string          `json:"category"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Status    string          `json:"status"`
}
