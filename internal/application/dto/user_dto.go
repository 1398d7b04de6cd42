package dto

// LoginRequest credenciales de acceso. El rol viene del formulario de login,
// igual que en el sistema original: debe coincidir con el rol almacenado.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginResponse token de sesión y datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de cuenta de operador (solo Admin).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// UserResponse representación de un usuario en respuestas (sin contraseña).
type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
