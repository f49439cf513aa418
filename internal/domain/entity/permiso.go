package entity

import "sort"

// Permiso es una capacidad del sistema. Los permisos de un usuario forman un
// conjunto enumerado con chequeo de pertenencia; las cadenas desconocidas se
// descartan al construir el conjunto.
type Permiso string

// Capacidades válidas.
const (
	PermisoClientes    Permiso = "clientes"
	PermisoProductos   Permiso = "productos"
	PermisoServicios   Permiso = "servicios"
	PermisoProveedores Permiso = "proveedores"
	PermisoVentas      Permiso = "ventas"
	PermisoUsuarios    Permiso = "usuarios"
	PermisoReportes    Permiso = "reportes"
)

var permisosValidos = map[Permiso]struct{}{
	PermisoClientes:    {},
	PermisoProductos:   {},
	PermisoServicios:   {},
	PermisoProveedores: {},
	PermisoVentas:      {},
	PermisoUsuarios:    {},
	PermisoReportes:    {},
}

// EsPermisoValido indica si la cadena corresponde a una capacidad conocida.
func EsPermisoValido(s string) bool {
	_, ok := permisosValidos[Permiso(s)]
	return ok
}

// ConjuntoPermisos conjunto de capacidades de un usuario.
type ConjuntoPermisos map[Permiso]struct{}

// NuevoConjuntoPermisos construye el conjunto desde cadenas; las desconocidas se descartan.
func NuevoConjuntoPermisos(ss []string) ConjuntoPermisos {
	cp := make(ConjuntoPermisos, len(ss))
	for _, s := range ss {
		if EsPermisoValido(s) {
			cp[Permiso(s)] = struct{}{}
		}
	}
	return cp
}

// Contiene chequeo de pertenencia.
func (cp ConjuntoPermisos) Contiene(p Permiso) bool {
	_, ok := cp[p]
	return ok
}

// Lista devuelve las capacidades ordenadas (para serializar de forma estable).
func (cp ConjuntoPermisos) Lista() []string {
	out := make([]string, 0, len(cp))
	for p := range cp {
		out = append(out, string(p))
	}
	sort.Strings(out)
	return out
}
