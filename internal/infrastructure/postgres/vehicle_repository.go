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

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación de VehicleRepository (usable con pool o tx).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// Create persiste un nuevo vehículo.
func (r *VehicleRepo) Create(vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, brand, model, category, daily_rate, status)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		vehicle.ID, vehicle.Brand, vehicle.Model, vehicle.Category, vehicle.DailyRate, vehicle.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID. Devuelve (nil, nil) si no existe.
func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	query := `
		SELECT id, brand, model, category, daily_rate, status
		FROM vehicles WHERE id = $1`
	var v entity.Vehicle
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Brand, &v.Model, &v.Category, &v.DailyRate, &v.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

// List devuelve todos los vehículos ordenados por ID.
func (r *VehicleRepo) List() ([]*entity.Vehicle, error) {
	query := `
		SELECT id, brand, model, category, daily_rate, status
		FROM vehicles ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Category, &v.DailyRate, &v.Status); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update reemplaza los campos del vehículo.
func (r *VehicleRepo) Update(vehicle *entity.Vehicle) error {
	query := `
		UPDATE vehicles SET brand = $2, model = $3, category = $4, daily_rate = $5, status = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		vehicle.ID, vehicle.Brand, vehicle.Model, vehicle.Category, vehicle.DailyRate, vehicle.Status,
	)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un vehículo por ID.
func (r *VehicleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
