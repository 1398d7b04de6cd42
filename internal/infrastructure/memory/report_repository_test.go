package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/infrastructure/memory"
)

func TestReportRepo_CountByCategory(t *testing.T) {
	repo := memory.NewReportRepository(seededStore())

	list, err := repo.CountByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 5, "la semilla tiene un vehículo por categoría")

	// Orden alfabético, como el GROUP BY ... ORDER BY del backend relacional.
	assert.Equal(t, "Bike", list[0].Category)
	assert.Equal(t, "Van", list[4].Category)
	for _, c := range list {
		assert.Equal(t, 1, c.Count)
	}
}

func TestReportRepo_SeriesSinteticasCubrenElRango(t *testing.T) {
	repo := memory.NewReportRepository(seededStore())
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	revenue, err := repo.RevenueByMonth(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, revenue, 4, "enero a abril inclusive")
	assert.Equal(t, "2025-01", revenue[0].Month)
	assert.Equal(t, "2025-04", revenue[3].Month)
	for _, m := range revenue {
		// Rango del modo offline: 5000 + aleatorio < 10000.
		assert.True(t, m.Total.GreaterThanOrEqual(decimal.NewFromInt(5000)), "mes %s: %s", m.Month, m.Total)
		assert.True(t, m.Total.LessThan(decimal.NewFromInt(15000)), "mes %s: %s", m.Month, m.Total)
	}

	trend, err := repo.BookingsByMonth(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, trend, 4)
	for _, m := range trend {
		assert.GreaterOrEqual(t, m.Count, 5)
		assert.Less(t, m.Count, 25)
	}
}

func TestReportRepo_SummaryReflejaElEstadoReal(t *testing.T) {
	s := seededStore()
	repo := memory.NewReportRepository(s)

	require.NoError(t, memory.NewBookingRepository(s).Create(&entity.Booking{
		ID: "b1", CustomerID: "C001", VehicleID: "V001",
		StartDate: time.Now(), EndDate: time.Now().AddDate(0, 0, 3),
		DailyRate: decimal.NewFromInt(150), Status: entity.BookingActive,
	}))
	require.NoError(t, memory.NewPaymentRepository(s).Create(&entity.Payment{
		ID: "p1", BookingID: "b0",
		Amount: decimal.NewFromFloat(450.00), Method: entity.MethodCash,
		PaymentDate: time.Now(),
	}))

	summary, err := repo.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalVehicles)
	assert.Equal(t, 4, summary.AvailableVehicles, "V005 está en Maintenance")
	assert.Equal(t, 2, summary.TotalCustomers)
	assert.Equal(t, 1, summary.ActiveBookings)
	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromFloat(450.00)))
}
