package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea las tablas si no existen. El esquema replica el del sistema
// original (MySQL) en dialecto PostgreSQL.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username VARCHAR(50) PRIMARY KEY,
			password VARCHAR(50) NOT NULL,
			role VARCHAR(20) NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS vehicles (
			id VARCHAR(20) PRIMARY KEY,
			brand VARCHAR(50) NOT NULL,
			model VARCHAR(50) NOT NULL,
			category VARCHAR(30) NOT NULL,
			daily_rate NUMERIC(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id VARCHAR(20) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			email VARCHAR(100),
			license VARCHAR(50),
			dob DATE)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id VARCHAR(36) PRIMARY KEY,
			customer_id VARCHAR(20) NOT NULL REFERENCES customers(id),
			vehicle_id VARCHAR(20) NOT NULL REFERENCES vehicles(id),
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			daily_rate NUMERIC(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL,
			employee_id VARCHAR(50) NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id VARCHAR(36) PRIMARY KEY,
			booking_id VARCHAR(36) NOT NULL REFERENCES bookings(id),
			amount NUMERIC(10,2) NOT NULL,
			method VARCHAR(30) NOT NULL,
			payment_date DATE NOT NULL)`,
	}
	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Seed inserta los datos iniciales solo si las tablas están vacías
// (usuarios por defecto, flota de muestra y dos clientes).
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed: contar users: %w", err)
	}
	if count == 0 {
		_, err := pool.Exec(ctx, `INSERT INTO users (username, password, role) VALUES
			('admin', 'admin123', 'Admin'),
			('employee', 'emp123', 'Employee')`)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles`).Scan(&count); err != nil {
		return fmt.Errorf("seed: contar vehicles: %w", err)
	}
	if count == 0 {
		_, err := pool.Exec(ctx, `INSERT INTO vehicles (id, brand, model, category, daily_rate, status) VALUES
			('V001', 'Tesla', 'Model S', 'Car', 150.00, 'Available'),
			('V002', 'BMW', 'X5', 'SUV', 120.00, 'Available'),
			('V003', 'Ford', 'Transit', 'Van', 100.00, 'Available'),
			('V004', 'Toyota', 'Hilux', 'Truck', 110.00, 'Available'),
			('V005', 'Honda', 'CBR600RR', 'Bike', 80.00, 'Maintenance')`)
		if err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}
	}

	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return fmt.Errorf("seed: contar customers: %w", err)
	}
	if count == 0 {
		_, err := pool.Exec(ctx, `INSERT INTO customers (id, name, phone, email, license, dob) VALUES
			('C001', 'John Apple', '55501234', 'john.com', 'DL12345', $1),
			('C002', 'Jane Williams', '55595678', 'williams.com', 'DL67890', $2)`,
			time.Date(1980, 5, 15, 0, 0, 0, 0, time.UTC),
			time.Date(1985, 10, 20, 0, 0, 0, 0, time.UTC))
		if err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
	}
	return nil
}
