package entity

import "time"

// Customer representa un cliente del negocio de alquiler. Inmutable tras su
// creación (el núcleo no define operación de actualización).
type Customer struct {
	ID          string // asignado por el operador (ej: "C001")
	Name        string
	Phone       string
	Email       string
	License     string // número de licencia de conducir
	DateOfBirth time.Time
}
