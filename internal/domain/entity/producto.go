package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del inventario. El nombre es único.
// CantidadProducto se descuenta al crear ventas y se ajusta con las
// operaciones explícitas de stock.
type Producto struct {
	ID               int
	Nombre           string
	CantidadProducto int
	PrecioVenta      decimal.Decimal
	PrecioCompra     decimal.Decimal
	Marca            string
	ProveedorID      int
	Categoria        string
	Estado           string // activo, inactivo
	FechaCreacion    time.Time
}
