package entity

// Estados de entidades con baja lógica (soft delete). Venta es la excepción:
// admite borrado físico.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)
