// Package memory implementa el backend de persistencia en memoria que se usa
// cuando PostgreSQL no está disponible al arrancar. Trabaja con las mismas
// entidades tipadas y los mismos puertos que el backend relacional: el resto
// de la aplicación no distingue entre ambos.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Store contiene las tablas en memoria. Un único RWMutex protege todo el
// conjunto; los repositorios listan en orden de inserción y siempre copian las
// entidades al leer y escribir para que nadie comparta punteros con el estado
// interno.
type Store struct {
	mu sync.RWMutex

	users     []entity.User
	vehicles  []entity.Vehicle
	customers []entity.Customer
	bookings  []entity.Booking
	payments  []entity.Payment
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{}
}

// Seed carga el mismo dataset inicial que el backend relacional: dos usuarios,
// cinco vehículos y dos clientes.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []entity.User{
		{Username: "admin", Password: "admin123", Role: entity.RoleAdmin},
		{Username: "employee", Password: "emp123", Role: entity.RoleEmployee},
	}
	s.vehicles = []entity.Vehicle{
		{ID: "V001", Brand: "Tesla", Model: "Model S", Category: entity.CategoryCar, DailyRate: decimal.NewFromFloat(150.00), Status: entity.VehicleAvailable},
		{ID: "V002", Brand: "BMW", Model: "X5", Category: entity.CategorySUV, DailyRate: decimal.NewFromFloat(120.00), Status: entity.VehicleAvailable},
		{ID: "V003", Brand: "Ford", Model: "Transit", Category: entity.CategoryVan, DailyRate: decimal.NewFromFloat(100.00), Status: entity.VehicleAvailable},
		{ID: "V004", Brand: "Toyota", Model: "Hilux", Category: entity.CategoryTruck, DailyRate: decimal.NewFromFloat(110.00), Status: entity.VehicleAvailable},
		{ID: "V005", Brand: "Honda", Model: "CBR600RR", Category: entity.CategoryBike, DailyRate: decimal.NewFromFloat(80.00), Status: entity.VehicleMaintenance},
	}
	s.customers = []entity.Customer{
		{ID: "C001", Name: "John Apple", Phone: "55501234", Email: "john.com", License: "DL12345", DateOfBirth: time.Date(1980, 5, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "C002", Name: "Jane Williams", Phone: "55595678", Email: "williams.com", License: "DL67890", DateOfBirth: time.Date(1985, 10, 20, 0, 0, 0, 0, time.UTC)},
	}
	s.bookings = nil
	s.payments = nil
}

// snapshot copia las tablas mutadas por el núcleo de reservas. Las entidades
// son structs de valores, así que clonar los slices basta como copia profunda.
type snapshot struct {
	vehicles []entity.Vehicle
	bookings []entity.Booking
	payments []entity.Payment
}

func (s *Store) takeSnapshot() snapshot {
	return snapshot{
		vehicles: append([]entity.Vehicle(nil), s.vehicles...),
		bookings: append([]entity.Booking(nil), s.bookings...),
		payments: append([]entity.Payment(nil), s.payments...),
	}
}

func (s *Store) restore(snap snapshot) {
	s.vehicles = snap.vehicles
	s.bookings = snap.bookings
	s.payments = snap.payments
}
