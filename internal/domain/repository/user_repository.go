package repository

import "github.com/jhoicas/rental-fleet-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// La clave natural es el username; Create devuelve ErrDuplicate si ya existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	Delete(username string) error
}
