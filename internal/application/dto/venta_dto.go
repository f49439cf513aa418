package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaVentaRequest línea de venta: producto o servicio con cantidad y costo
// pactado al momento de vender.
type LineaVentaRequest struct {
	ID       int             `json:"id"`
	Cantidad int             `json:"cantidad"`
	Costo    decimal.Decimal `json:"costo"`
}

// CrearVentaRequest body para POST /api/ventas. El vendedor sale de la sesión
// autenticada, no del body.
type CrearVentaRequest struct {
	CedulaCliente string              `json:"cedula_cliente"`
	Productos     []LineaVentaRequest `json:"productos,omitempty"`
	Servicios     []LineaVentaRequest `json:"servicios,omitempty"`
	IVA           decimal.Decimal     `json:"iva,omitempty"`         // porcentaje; 0 si se omite
	MetodoPago    string              `json:"metodo_pago,omitempty"` // "efectivo" si se omite
}

// ActualizarVentaRequest body para PUT /api/ventas/:id. Actualización parcial;
// el total NO se recalcula.
type ActualizarVentaRequest struct {
	CedulaCliente *string          `json:"cedula_cliente,omitempty"`
	IVA           *decimal.Decimal `json:"iva,omitempty"`
	TotalPagar    *decimal.Decimal `json:"total_pagar,omitempty"`
	MetodoPago    *string          `json:"metodo_pago,omitempty"`
	Estado        *string          `json:"estado,omitempty"`
}

// LineaVentaResponse línea en respuestas.
type LineaVentaResponse struct {
	ID       int             `json:"id"`
	Cantidad int             `json:"cantidad"`
	Costo    decimal.Decimal `json:"costo"`
}

// VentaResponse venta en respuestas.
type VentaResponse struct {
	ID            int                  `json:"id"`
	CedulaCliente string               `json:"cedula_cliente"`
	Productos     []LineaVentaResponse `json:"productos"`
	Servicios     []LineaVentaResponse `json:"servicios"`
	IVA           decimal.Decimal      `json:"iva"`
	TotalPagar    decimal.Decimal      `json:"total_pagar"`
	MetodoPago    string               `json:"metodo_pago"`
	Vendedor      string               `json:"vendedor"`
	Estado        string               `json:"estado"`
	FechaVenta    time.Time            `json:"fecha_venta"`
}

// EstadisticasResponse agregados para GET /api/ventas/stats.
type EstadisticasResponse struct {
	TotalVentas    decimal.Decimal `json:"total_ventas"`
	CantidadVentas int64           `json:"cantidad_ventas"`
	VentasHoy      int64           `json:"ventas_hoy"`
	VentasMes      int64           `json:"ventas_mes"`
	PromedioVenta  decimal.Decimal `json:"promedio_venta"`
}
