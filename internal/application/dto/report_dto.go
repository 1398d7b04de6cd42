package dto

import "github.com/shopspring/decimal"

// CategoryCountDTO porción del gráfico de distribución por categoría.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MonthRevenueDTO barra del gráfico de ingresos mensuales.
type MonthRevenueDTO struct {
	Month string          `json:"month"` // "2006-01"
	Total decimal.Decimal `json:"total"`
}

// MonthBookingsDTO punto del gráfico de tendencia de reservas.
type MonthBookingsDTO struct {
	Month string `json:"month"` // "2006-01"
	Count int    `json:"count"`
}

// ChartsDTO las tres series de la pestaña de reportes.
type ChartsDTO struct {
	Categories []CategoryCountDTO `json:"categories"`
	Revenue    []MonthRevenueDTO  `json:"revenue"`
	Trend      []MonthBookingsDTO `json:"trend"`
}

// SummaryDTO totales del panel principal.
type SummaryDTO struct {
	TotalVehicles     int             `json:"total_vehicles"`
	AvailableVehicles int             `json:"available_vehicles"`
	TotalCustomers    int             `json:"total_customers"`
	ActiveBookings    int             `json:"active_bookings"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}
