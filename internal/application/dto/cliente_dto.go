package dto

import "time"

// CrearClienteRequest body para POST /api/clientes.
type CrearClienteRequest struct {
	Cedula    string `json:"cedula"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ActualizarClienteRequest body para PUT /api/clientes/:id. Campos nil no se tocan.
type ActualizarClienteRequest struct {
	Cedula    *string `json:"cedula,omitempty"`
	Nombre    *string `json:"nombre,omitempty"`
	Apellido  *string `json:"apellido,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Email     *string `json:"email,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID            int       `json:"id"`
	Cedula        string    `json:"cedula"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido,omitempty"`
	Telefono      string    `json:"telefono,omitempty"`
	Email         string    `json:"email,omitempty"`
	Direccion     string    `json:"direccion,omitempty"`
	Estado        string    `json:"estado"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
