package entity

import "time"

// Cliente representa un cliente del negocio. La cédula es única y es la
// referencia (denormalizada, sin FK) que usan las ventas.
type Cliente struct {
	ID            int
	Cedula        string
	Nombre        string
	Apellido      string
	Telefono      string
	Email         string
	Direccion     string
	Estado        string // activo, inactivo
	FechaCreacion time.Time
}
