package entity

import "time"

// Acciones registradas en la bitácora de cambios.
const (
	AccionAgregar    = "Agregar"
	AccionActualizar = "Actualizar"
	AccionInactivo   = "Inactivo"
	AccionActivo     = "Activo"
	AccionEliminar   = "Eliminar"
)

// Cambio es una entrada de la bitácora de auditoría: quién cambió qué entidad
// y cómo. Solo escritura desde la aplicación; ningún endpoint la lee.
type Cambio struct {
	ID          string // UUID
	Usuario     string // nombre de usuario del actor
	Descripcion string
	Accion      string // Agregar, Actualizar, Inactivo, Activo, Eliminar
	Entidad     string // cliente, producto, servicio, proveedor, usuario, venta
	EntidadID   string
	Fecha       time.Time
}
