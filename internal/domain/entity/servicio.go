package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Servicio representa un servicio ofrecido por el negocio. Durante una venta
// es solo lectura (no hay stock que descontar).
type Servicio struct {
	ID            int
	Nombre        string
	Costo         decimal.Decimal
	Estado        string // activo, inactivo
	FechaCreacion time.Time
}
