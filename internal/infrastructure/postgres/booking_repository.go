package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación de BookingRepository (usable con pool o tx).
type BookingRepo struct {
	q Querier
}

// NewBookingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBookingRepository(q Querier) *BookingRepo {
	return &BookingRepo{q: q}
}

const bookingColumns = `id, customer_id, vehicle_id, start_date, end_date, daily_rate, status, employee_id`

// Create persiste una nueva reserva.
func (r *BookingRepo) Create(booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		booking.ID, booking.CustomerID, booking.VehicleID, booking.StartDate, booking.EndDate,
		booking.DailyRate, booking.Status, booking.EmployeeID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID. Devuelve (nil, nil) si no existe.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// List devuelve todas las reservas, más recientes primero.
func (r *BookingRepo) List() ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY start_date DESC, id`
	return r.queryBookings(query)
}

// ListByVehicle devuelve las reservas del vehículo, opcionalmente filtradas por estado.
func (r *BookingRepo) ListByVehicle(vehicleID, status string) ([]*entity.Booking, error) {
	if status != "" {
		query := `SELECT ` + bookingColumns + ` FROM bookings WHERE vehicle_id = $1 AND status = $2 ORDER BY start_date DESC, id`
		return r.queryBookings(query, vehicleID, status)
	}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE vehicle_id = $1 ORDER BY start_date DESC, id`
	return r.queryBookings(query, vehicleID)
}

// Update reemplaza los campos de la reserva.
func (r *BookingRepo) Update(booking *entity.Booking) error {
	query := `
		UPDATE bookings SET customer_id = $2, vehicle_id = $3, start_date = $4, end_date = $5,
			daily_rate = $6, status = $7, employee_id = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		booking.ID, booking.CustomerID, booking.VehicleID, booking.StartDate, booking.EndDate,
		booking.DailyRate, booking.Status, booking.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingRepo) queryBookings(query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID, &b.CustomerID, &b.VehicleID, &b.StartDate, &b.EndDate,
		&b.DailyRate, &b.Status, &b.EmployeeID,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
