package dto

// CreateCustomerRequest alta de cliente. El ID lo asigna el operador.
type CreateCustomerRequest struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	License     string `json:"license"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

// CustomerResponse representación de un cliente en respuestas.
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	License     string `json:"license"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}
