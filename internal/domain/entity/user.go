package entity

// Roles de usuario.
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// User representa una cuenta de operador. La contraseña se almacena y compara
// tal cual (sin hash): el sistema original funciona así y la semilla de datos
// depende de ello.
type User struct {
	Username string // clave primaria
	Password string
	Role     string // ver constantes Role*
}

// ValidRole indica si el rol es uno de los admitidos.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEmployee
}
