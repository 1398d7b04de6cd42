package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
)

func TestCanTransitionVehicle(t *testing.T) {
	casos := []struct {
		from, to string
		permite  bool
	}{
		{entity.VehicleAvailable, entity.VehicleRented, true},
		{entity.VehicleRented, entity.VehicleAvailable, true},
		{entity.VehicleAvailable, entity.VehicleAvailable, false},
		{entity.VehicleRented, entity.VehicleRented, false},
		{entity.VehicleMaintenance, entity.VehicleRented, false},
		{entity.VehicleMaintenance, entity.VehicleAvailable, false},
		{entity.VehicleAvailable, entity.VehicleMaintenance, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.permite, entity.CanTransitionVehicle(c.from, c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestCanTransitionBooking(t *testing.T) {
	casos := []struct {
		from, to string
		permite  bool
	}{
		{entity.BookingActive, entity.BookingCompleted, true},
		{entity.BookingActive, entity.BookingCancelled, true},
		{entity.BookingCompleted, entity.BookingActive, false},
		{entity.BookingCompleted, entity.BookingCancelled, false},
		{entity.BookingCancelled, entity.BookingActive, false},
		{entity.BookingCancelled, entity.BookingCompleted, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.permite, entity.CanTransitionBooking(c.from, c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestBooking_DaysYTotal(t *testing.T) {
	b := &entity.Booking{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		DailyRate: decimal.NewFromFloat(150.00),
	}
	assert.Equal(t, int64(7), b.Days())
	assert.True(t, b.Total().Equal(decimal.NewFromFloat(1050.00)), "got %s", b.Total())
}

func TestValidadores(t *testing.T) {
	assert.True(t, entity.ValidCategory(entity.CategorySUV))
	assert.False(t, entity.ValidCategory("Sedan"))

	assert.True(t, entity.ValidVehicleStatus(entity.VehicleMaintenance))
	assert.False(t, entity.ValidVehicleStatus("Broken"))

	assert.True(t, entity.ValidMethod(entity.MethodCreditCard))
	assert.False(t, entity.ValidMethod("credit card"), "los métodos distinguen mayúsculas")

	assert.True(t, entity.ValidRole(entity.RoleEmployee))
	assert.False(t, entity.ValidRole("employee"))
}
