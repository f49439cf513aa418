package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest body para POST /api/productos.
type CrearProductoRequest struct {
	Nombre           string          `json:"nombre"`
	CantidadProducto int             `json:"cantidad_producto"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	PrecioCompra     decimal.Decimal `json:"precio_compra"`
	Marca            string          `json:"marca,omitempty"`
	ProveedorID      int             `json:"proveedor_id,omitempty"`
	Categoria        string          `json:"categoria,omitempty"`
}

// ActualizarProductoRequest body para PUT /api/productos/:id. Campos nil no se
// tocan; el stock no se actualiza por aquí (usar las operaciones de stock).
type ActualizarProductoRequest struct {
	Nombre       *string          `json:"nombre,omitempty"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta,omitempty"`
	PrecioCompra *decimal.Decimal `json:"precio_compra,omitempty"`
	Marca        *string          `json:"marca,omitempty"`
	ProveedorID  *int             `json:"proveedor_id,omitempty"`
	Categoria    *string          `json:"categoria,omitempty"`
}

// ProductoResponse producto en respuestas.
type ProductoResponse struct {
	ID               int             `json:"id"`
	Nombre           string          `json:"nombre"`
	CantidadProducto int             `json:"cantidad_producto"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	PrecioCompra     decimal.Decimal `json:"precio_compra"`
	Marca            string          `json:"marca,omitempty"`
	ProveedorID      int             `json:"proveedor_id,omitempty"`
	Categoria        string          `json:"categoria,omitempty"`
	Estado           string          `json:"estado"`
	FechaCreacion    time.Time       `json:"fecha_creacion"`
}

// ItemStockRequest entrada de /api/productos/stock/check: producto y cantidad deseada.
type ItemStockRequest struct {
	ID       int `json:"id"`
	Cantidad int `json:"cantidad"`
}

// CheckStockRequest body para POST /api/productos/stock/check.
type CheckStockRequest struct {
	Items []ItemStockRequest `json:"items"`
}

// DisponibilidadStock resultado por producto resuelto. Los IDs que no
// resuelven se omiten de la lista, no se reportan como error.
type DisponibilidadStock struct {
	ID                  int  `json:"id"`
	CantidadDisponible  int  `json:"cantidadDisponible"`
	Suficiente          bool `json:"suficiente"`
}

// FijarStockRequest body para PUT /api/productos/:id/stock.
type FijarStockRequest struct {
	Cantidad int `json:"cantidad"`
}

// AgregarStockRequest body para POST /api/productos/:id/stock. Delta debe ser > 0.
type AgregarStockRequest struct {
	Cantidad int `json:"cantidad"`
}

// StockResponse cantidad resultante tras una mutación de stock.
type StockResponse struct {
	ID               int `json:"id"`
	CantidadProducto int `json:"cantidad_producto"`
}
