package entity

import "time"

// Usuario representa un usuario del sistema con su perfil y capacidades.
// Contrasena guarda el hash bcrypt; solo la lectura de credenciales del login
// la recupera de la base, el resto de lecturas la dejan vacía.
type Usuario struct {
	ID            string // UUID
	Usuario       string // nombre de usuario, único
	Contrasena    string // hash bcrypt
	Nombre        string
	Apellido      string
	Cedula        string // única
	Email         string // único
	Telefono      string
	Perfil        string // nombre del rol, p. ej. "Administrador", "Vendedor"
	Permisos      ConjuntoPermisos
	Estado        string // activo, inactivo
	FechaCreacion time.Time
}

// NombreCompleto nombre a mostrar del vendedor en ventas y facturas.
func (u *Usuario) NombreCompleto() string {
	if u.Apellido == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellido
}
