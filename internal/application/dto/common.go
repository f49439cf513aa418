package dto

// Respuesta es el sobre JSON uniforme de todos los endpoints (salvo la factura
// HTML, que devuelve el documento crudo).
type Respuesta struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       interface{}       `json:"data,omitempty"`
	Pagination *Paginacion       `json:"pagination,omitempty"`
	Errors     []ErrorValidacion `json:"errors,omitempty"`
}

// ErrorValidacion detalle de un error de validación de entrada.
type ErrorValidacion struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// CambiarEstadoRequest body para PATCH /:id/estado.
type CambiarEstadoRequest struct {
	Estado string `json:"estado"` // activo, inactivo
}

// Paginacion metadatos de página en respuestas de listado.
type Paginacion struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NuevaPaginacion calcula los metadatos a partir del total de filas.
func NuevaPaginacion(page, limit, total int) *Paginacion {
	if limit <= 0 {
		limit = 10
	}
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return &Paginacion{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
