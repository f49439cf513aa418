package entity

import "time"

// Proveedor representa un proveedor de productos (referenciado por Producto vía ID).
type Proveedor struct {
	ID            int
	Nombre        string
	Telefono      string
	Email         string
	Direccion     string
	Estado        string // activo, inactivo
	FechaCreacion time.Time
}
