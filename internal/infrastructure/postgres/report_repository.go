package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación read-only de ReportRepository sobre datos reales.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// CountByCategory devuelve la distribución de vehículos por categoría.
func (r *ReportRepo) CountByCategory(ctx context.Context) ([]repository.CategoryCountResult, error) {
	query := `SELECT category, COUNT(*) FROM vehicles GROUP BY category ORDER BY category`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryCountResult
	for rows.Next() {
		var c repository.CategoryCountResult
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// RevenueByMonth suma los pagos agrupados por mes dentro del rango dado.
func (r *ReportRepo) RevenueByMonth(ctx context.Context, start, end time.Time) ([]repository.MonthRevenueResult, error) {
	query := `
		SELECT to_char(payment_date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0)
		FROM payments WHERE payment_date BETWEEN $1 AND $2
		GROUP BY to_char(payment_date, 'YYYY-MM') ORDER BY month`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("revenue by month: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthRevenueResult
	for rows.Next() {
		var m repository.MonthRevenueResult
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("scan month revenue: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// BookingsByMonth cuenta reservas agrupadas por mes de inicio dentro del rango dado.
func (r *ReportRepo) BookingsByMonth(ctx context.Context, start, end time.Time) ([]repository.MonthBookingsResult, error) {
	query := `
		SELECT to_char(start_date, 'YYYY-MM') AS month, COUNT(*)
		FROM bookings WHERE start_date BETWEEN $1 AND $2
		GROUP BY to_char(start_date, 'YYYY-MM') ORDER BY month`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("bookings by month: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthBookingsResult
	for rows.Next() {
		var m repository.MonthBookingsResult
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, fmt.Errorf("scan month bookings: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Summary devuelve los totales del panel con una sola consulta por tabla.
func (r *ReportRepo) Summary(ctx context.Context) (*repository.SummaryResult, error) {
	var s repository.SummaryResult
	query := `
		SELECT
			(SELECT COUNT(*) FROM vehicles),
			(SELECT COUNT(*) FROM vehicles WHERE status = $1),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM bookings WHERE status = $2),
			(SELECT COALESCE(SUM(amount), 0) FROM payments)`
	err := r.q.QueryRow(ctx, query, entity.VehicleAvailable, entity.BookingActive).Scan(
		&s.TotalVehicles, &s.AvailableVehicles, &s.TotalCustomers, &s.ActiveBookings, &s.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	return &s, nil
}
