// Package reports contiene los casos de uso de solo lectura para los gráficos
// y el panel principal. Ningún invariante vive aquí: todo se deriva del
// ReportRepository y una lectura desfasada respecto a escrituras concurrentes
// es aceptable.
package reports

import (
	"context"
	"time"

	"github.com/jhoicas/rental-fleet-api/internal/application/dto"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

// DashboardUseCase genera las series de reportes y el resumen del panel.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// Charts construye las tres series de la pestaña de reportes para el rango
// dado. Las tres consultas van en paralelo: son independientes entre sí.
func (uc *DashboardUseCase) Charts(ctx context.Context, start, end time.Time) (*dto.ChartsDTO, error) {
	type categoriesResult struct {
		list []repository.CategoryCountResult
		err  error
	}
	type revenueResult struct {
		list []repository.MonthRevenueResult
		err  error
	}
	type trendResult struct {
		list []repository.MonthBookingsResult
		err  error
	}

	categoriesCh := make(chan categoriesResult, 1)
	revenueCh := make(chan revenueResult, 1)
	trendCh := make(chan trendResult, 1)

	go func() {
		list, err := uc.reportRepo.CountByCategory(ctx)
		categoriesCh <- categoriesResult{list, err}
	}()
	go func() {
		list, err := uc.reportRepo.RevenueByMonth(ctx, start, end)
		revenueCh <- revenueResult{list, err}
	}()
	go func() {
		list, err := uc.reportRepo.BookingsByMonth(ctx, start, end)
		trendCh <- trendResult{list, err}
	}()

	categories := <-categoriesCh
	revenue := <-revenueCh
	trend := <-trendCh

	if categories.err != nil {
		return nil, categories.err
	}
	if revenue.err != nil {
		return nil, revenue.err
	}
	if trend.err != nil {
		return nil, trend.err
	}

	charts := &dto.ChartsDTO{
		Categories: make([]dto.CategoryCountDTO, 0, len(categories.list)),
		Revenue:    make([]dto.MonthRevenueDTO, 0, len(revenue.list)),
		Trend:      make([]dto.MonthBookingsDTO, 0, len(trend.list)),
	}
	for _, c := range categories.list {
		charts.Categories = append(charts.Categories, dto.CategoryCountDTO{Category: c.Category, Count: c.Count})
	}
	for _, m := range revenue.list {
		charts.Revenue = append(charts.Revenue, dto.MonthRevenueDTO{Month: m.Month, Total: m.Total})
	}
	for _, m := range trend.list {
		charts.Trend = append(charts.Trend, dto.MonthBookingsDTO{Month: m.Month, Count: m.Count})
	}
	return charts, nil
}

// Summary devuelve los totales del panel principal.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.SummaryDTO, error) {
	s, err := uc.reportRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SummaryDTO{
		TotalVehicles:     s.TotalVehicles,
		AvailableVehicles: s.AvailableVehicles,
		TotalCustomers:    s.TotalCustomers,
		ActiveBookings:    s.ActiveBookings,
		TotalRevenue:      s.TotalRevenue,
	}, nil
}
