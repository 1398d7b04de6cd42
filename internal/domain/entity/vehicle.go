package entity

import "github.com/shopspring/decimal"

// Estados de un vehículo.
const (
	VehicleAvailable   = "Available"   // disponible para reservar
	VehicleRented      = "Rented"      // retenido por una reserva activa
	VehicleMaintenance = "Maintenance" // fuera de servicio por decisión del operador
)

// Categorías de vehículo admitidas.
const (
	CategoryCar   = "Car"
	CategorySUV   = "SUV"
	CategoryTruck = "Truck"
	CategoryVan   = "Van"
	CategoryBike  = "Bike"
)

// Vehicle representa un vehículo de la flota. El ID lo asigna el operador
// (ej: "V001"); Status es el único campo que muta durante el flujo de reservas.
type Vehicle struct {
	ID        string
	Brand     string
	Model     string
	Category  string          // ver constantes Category*
	DailyRate decimal.Decimal // tarifa diaria, no negativa
	Status    string          // ver constantes Vehicle*
}

// ValidCategory indica si la categoría es una de las admitidas.
func ValidCategory(c string) bool {
	switch c {
	case CategoryCar, CategorySUV, CategoryTruck, CategoryVan, CategoryBike:
		return true
	}
	return false
}

// ValidVehicleStatus indica si el estado es uno de los admitidos.
func ValidVehicleStatus(s string) bool {
	switch s {
	case VehicleAvailable, VehicleRented, VehicleMaintenance:
		return true
	}
	return false
}

// allowVehicleTransition define el grafo de flujo de estados del vehículo
// durante el ciclo de reserva. Maintenance solo entra/sale por edición directa
// del operador, nunca por el flujo de reserva.
var allowVehicleTransition = map[string][]string{
	VehicleAvailable: {VehicleRented},
	VehicleRented:    {VehicleAvailable},
}

// CanTransitionVehicle indica si from -> to es un cambio de estado permitido
// dentro del flujo de reserva.
func CanTransitionVehicle(from, to string) bool {
	for _, s := range allowVehicleTransition[from] {
		if s == to {
			return true
		}
	}
	return false
}
