package auth

import (
	"github.com/jhoicas/rental-fleet-api/internal/application/dto"
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
	"github.com/jhoicas/rental-fleet-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación (login).
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password/rol, genera JWT y retorna token + usuario.
// Las contraseñas se comparan tal cual están almacenadas (el esquema original
// no las hashea) y el rol del formulario debe coincidir con el de la cuenta.
// Cualquier discrepancia responde ErrUnauthorized sin distinguir la causa.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != in.Password || user.Role != in.Role {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}
