package usecase

import (
	"errors"

	"github.com/jhoicas/rental-fleet-api/internal/application/dto"
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para cuentas de operador.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Add crea una cuenta. Devuelve ErrConflict si el username ya existe,
// ErrInvalidInput si el rol no es Admin ni Employee.
func (uc *UserUseCase) Add(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	user := &entity.User{
		Username: in.Username,
		Password: in.Password,
		Role:     in.Role,
	}
	if err := uc.repo.Create(user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return userToResponse(user), nil
}

// List devuelve todas las cuentas (sin contraseñas).
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	list := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		list = append(list, userToResponse(u))
	}
	return list, nil
}

// Delete elimina una cuenta por username.
func (uc *UserUseCase) Delete(username string) error {
	return uc.repo.Delete(username)
}

func userToResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Username: u.Username,
		Role:     u.Role,
	}
}
