package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rental-fleet-api/pkg/config"
)

func TestDSN_EscapaCaracteresEspeciales(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word/1",
		DBName:   "vehicle_rental",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://postgres:")
	assert.Contains(t, dsn, "@localhost:5432/vehicle_rental")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.NotContains(t, dsn, "p@ss:word/1", "la contraseña va URL-encoded")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL: "postgresql://u:p@db:5432/x?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, "postgresql://u:p@db:5432/x?sslmode=require", cfg.ConnectionString())
}

func TestHTTPConfig_Addr(t *testing.T) {
	cfg := config.HTTPConfig{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_NumericoMalformadoUsaElDefault(t *testing.T) {
	t.Setenv("DB_PORT", "abc")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.DB.Port, "un valor no numérico no debe colarse como 0")
}

func TestLoad_NumericoValidoSeRespeta(t *testing.T) {
	t.Setenv("DB_PORT", "6543")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 6543, cfg.DB.Port)
}
