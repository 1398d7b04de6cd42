package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryCountResult resultado crudo del conteo de vehículos por categoría.
type CategoryCountResult struct {
	Category string
	Count    int
}

// MonthRevenueResult ingresos de un mes (clave "2006-01").
type MonthRevenueResult struct {
	Month string
	Total decimal.Decimal
}

// MonthBookingsResult número de reservas iniciadas en un mes (clave "2006-01").
type MonthBookingsResult struct {
	Month string
	Count int
}

// SummaryResult totales del panel principal.
type SummaryResult struct {
	TotalVehicles     int
	AvailableVehicles int
	TotalCustomers    int
	ActiveBookings    int
	TotalRevenue      decimal.Decimal
}

// ReportRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only y no están aisladas de escrituras
// concurrentes: una lectura ligeramente desfasada es aceptable.
type ReportRepository interface {
	// CountByCategory devuelve la distribución de vehículos por categoría.
	CountByCategory(ctx context.Context) ([]CategoryCountResult, error)

	// RevenueByMonth suma Payment.Amount agrupado por mes de payment_date
	// dentro del rango [start, end], ordenado por mes ascendente.
	RevenueByMonth(ctx context.Context, start, end time.Time) ([]MonthRevenueResult, error)

	// BookingsByMonth cuenta reservas agrupadas por mes de start_date dentro
	// del rango [start, end], ordenado por mes ascendente.
	BookingsByMonth(ctx context.Context, start, end time.Time) ([]MonthBookingsResult, error)

	// Summary devuelve los totales del panel (flota, clientes, reservas
	// activas e ingresos acumulados).
	Summary(ctx context.Context) (*SummaryResult, error)
}
