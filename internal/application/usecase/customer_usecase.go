package usecase

import (
	"time"

	"github.com/jhoicas/rental-fleet-api/internal/application/dto"
	"github.com/jhoicas/rental-fleet-api/internal/domain"
	"github.com/jhoicas/rental-fleet-api/internal/domain/entity"
	"github.com/jhoicas/rental-fleet-api/internal/domain/repository"
)

// CustomerUseCase aplica reglas de negocio para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso con el puerto de persistencia.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Add da de alta un cliente. Devuelve ErrDuplicate si el ID ya está en uso,
// ErrInvalidInput si la fecha de nacimiento no parsea.
func (uc *CustomerUseCase) Add(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	var dob time.Time
	if in.DateOfBirth != "" {
		parsed, err := time.Parse(dto.DateLayout, in.DateOfBirth)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dob = parsed
	}
	customer := &entity.Customer{
		ID:          in.ID,
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		License:     in.License,
		DateOfBirth: dob,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customerToResponse(customer), nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	list := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		list = append(list, customerToResponse(c))
	}
	return list, nil
}

// Delete elimina un cliente. Devuelve ErrConflict si tiene reservas.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func customerToResponse(c *entity.Customer) *dto.CustomerResponse {
	resp := &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		License: c.License,
	}
	if !c.DateOfBirth.IsZero() {
		resp.DateOfBirth = c.DateOfBirth.Format(dto.DateLayout)
	}
	return resp
}
