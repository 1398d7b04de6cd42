package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rental-fleet-api/internal/application/auth"
	"github.com/jhoicas/rental-fleet-api/internal/application/dto"
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/rental-fleet-api/pkg/jwt"
)

const testSecret = "secret-para-tests"

func newAuthUC() *auth.AuthUseCase {
	s := memory.NewStore()
	s.Seed()
	return auth.NewAuthUseCase(memory.NewUserRepository(s), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "rental-fleet-test",
	})
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := newAuthUC()

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.User.Username)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// El token lleva username y rol verificables.
	username, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_Rechazos(t *testing.T) {
	uc := newAuthUC()

	casos := []struct {
		nombre string
		in     dto.LoginRequest
	}{
		{"usuario inexistente", dto.LoginRequest{Username: "nadie", Password: "x", Role: entity.RoleAdmin}},
		{"contraseña incorrecta", dto.LoginRequest{Username: "admin", Password: "otra", Role: entity.RoleAdmin}},
		{"rol que no coincide", dto.LoginRequest{Username: "admin", Password: "admin123", Role: entity.RoleEmployee}},
		{"contraseña de otro usuario", dto.LoginRequest{Username: "employee", Password: "admin123", Role: entity.RoleEmployee}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Login(c.in)
			assert.ErrorIs(t, err, domain.ErrUnauthorized,
				"toda discrepancia responde igual, sin distinguir la causa")
		})
	}
}

func TestLogin_EmpleadoConSuRol(t *testing.T) {
	uc := newAuthUC()
	out, err := uc.Login(dto.LoginRequest{Username: "employee", Password: "emp123", Role: entity.RoleEmployee})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.User.Role)
}
