package memory

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementación en memoria de ReportRepository.
//
// La distribución por categoría y el resumen se calculan sobre los datos
// reales del Store. Las series mensuales (ingresos y tendencia de reservas)
// devuelven valores sintéticos aleatorios: en una sesión en memoria no hay
// histórico y el sistema original rellena los gráficos con datos simulados.
// Esa simulación vive solo en este paquete; el backend relacional nunca la usa.
type ReportRepo struct {
	s *Store

	// randMu protege rand: *rand.Rand no es seguro para uso concurrente y las
	// series mensuales se consultan en paralelo desde el panel.
	randMu sync.Mutex
	rand   *rand.Rand
}

// NewReportRepository construye el adaptador de reportes en memoria.
func NewReportRepository(s *Store) *ReportRepo {
	return &ReportRepo{s: s, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *ReportRepo) randN(n int) int {
	r.randMu.Lock()
	defer r.randMu.Unlock()
	return r.rand.Intn(n)
}

// CountByCategory devuelve la distribución de vehículos por categoría,
// ordenada alfabéticamente como su equivalente SQL.
func (r *ReportRepo) CountByCategory(ctx context.Context) ([]repository.CategoryCountResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[string]int)
	for i := range r.s.vehicles {
		counts[r.s.vehicles[i].Category]++
	}
	list := make([]repository.CategoryCountResult, 0, len(counts))
	for category, count := range counts {
		list = append(list, repository.CategoryCountResult{Category: category, Count: count})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Category < list[j].Category })
	return list, nil
}

// RevenueByMonth devuelve un valor simulado por cada mes del rango
// (5000 + aleatorio < 10000, como el modo offline del sistema original).
func (r *ReportRepo) RevenueByMonth(ctx context.Context, start, end time.Time) ([]repository.MonthRevenueResult, error) {
	var list []repository.MonthRevenueResult
	for _, month := range monthsBetween(start, end) {
		list = append(list, repository.MonthRevenueResult{
			Month: month,
			Total: decimal.NewFromInt(5000 + int64(r.randN(10000))),
		})
	}
	return list, nil
}

// BookingsByMonth devuelve un conteo simulado por cada mes del rango
// (5 + aleatorio < 20, como el modo offline del sistema original).
func (r *ReportRepo) BookingsByMonth(ctx context.Context, start, end time.Time) ([]repository.MonthBookingsResult, error) {
	var list []repository.MonthBookingsResult
	for _, month := range monthsBetween(start, end) {
		list = append(list, repository.MonthBookingsResult{
			Month: month,
			Count: 5 + r.randN(20),
		})
	}
	return list, nil
}

// Summary devuelve los totales reales del Store (sin simulación: estos números
// sí reflejan el estado de la sesión).
func (r *ReportRepo) Summary(ctx context.Context) (*repository.SummaryResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	s := repository.SummaryResult{
		TotalVehicles:  len(r.s.vehicles),
		TotalCustomers: len(r.s.customers),
		TotalRevenue:   decimal.Zero,
	}
	for i := range r.s.vehicles {
		if r.s.vehicles[i].Status == entity.VehicleAvailable {
			s.AvailableVehicles++
		}
	}
	for i := range r.s.bookings {
		if r.s.bookings[i].Status == entity.BookingActive {
			s.ActiveBookings++
		}
	}
	for i := range r.s.payments {
		s.TotalRevenue = s.TotalRevenue.Add(r.s.payments[i].Amount)
	}
	return &s, nil
}

// monthsBetween devuelve las claves "YYYY-MM" de cada mes del rango [start, end].
func monthsBetween(start, end time.Time) []string {
	var months []string
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for !current.After(end) {
		months = append(months, current.Format("2006-01"))
		current = current.AddDate(0, 1, 0)
	}
	return months
}
