package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearServicioRequest body para POST /api/servicios.
type CrearServicioRequest struct {
	Nombre string          `json:"nombre"`
	Costo  decimal.Decimal `json:"costo"`
}

// ActualizarServicioRequest body para PUT /api/servicios/:id.
type ActualizarServicioRequest struct {
	Nombre *string          `json:"nombre,omitempty"`
	Costo  *decimal.Decimal `json:"costo,omitempty"`
}

// ServicioResponse servicio en respuestas.
type ServicioResponse struct {
	ID            int             `json:"id"`
	Nombre        string          `json:"nombre"`
	Costo         decimal.Decimal `json:"costo"`
	Estado        string          `json:"estado"`
	FechaCreacion time.Time       `json:"fecha_creacion"`
}

// CrearProveedorRequest body para POST /api/proveedores.
type CrearProveedorRequest struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ActualizarProveedorRequest body para PUT /api/proveedores/:id.
type ActualizarProveedorRequest struct {
	Nombre    *string `json:"nombre,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Email     *string `json:"email,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
}

// ProveedorResponse proveedor en respuestas.
type ProveedorResponse struct {
	ID            int       `json:"id"`
	Nombre        string    `json:"nombre"`
	Telefono      string    `json:"telefono,omitempty"`
	Email         string    `json:"email,omitempty"`
	Direccion     string    `json:"direccion,omitempty"`
	Estado        string    `json:"estado"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
