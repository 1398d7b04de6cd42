package memory

import (
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct {
	s *Store
}

// NewUserRepository construye el adaptador sobre el Store.
func NewUserRepository(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// Create agrega un usuario. Devuelve ErrDuplicate si el username ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if indexUser(r.s.users, user.Username) >= 0 {
		return domain.ErrDuplicate
	}
	r.s.users = append(r.s.users, *user)
	return nil
}

// GetByUsername devuelve una copia del usuario, o (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i := indexUser(r.s.users, username)
	if i < 0 {
		return nil, nil
	}
	u := r.s.users[i]
	return &u, nil
}

// List devuelve copias de todos los usuarios en orden de inserción.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.User, 0, len(r.s.users))
	for i := range r.s.users {
		u := r.s.users[i]
		list = append(list, &u)
	}
	return list, nil
}

// Delete elimina el usuario por username.
func (r *UserRepo) Delete(username string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := indexUser(r.s.users, username)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.s.users = append(r.s.users[:i], r.s.users[i+1:]...)
	return nil
}

func indexUser(users []entity.User, username string) int {
	for i := range users {
		if users[i].Username == username {
			return i
		}
	}
	return -1
}
