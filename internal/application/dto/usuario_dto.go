package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse token y usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// CrearUsuarioRequest body para POST /api/usuarios.
type CrearUsuarioRequest struct {
	Usuario    string   `json:"usuario"`
	Contrasena string   `json:"contrasena"`
	Nombre     string   `json:"nombre"`
	Apellido   string   `json:"apellido,omitempty"`
	Cedula     string   `json:"cedula"`
	Email      string   `json:"email"`
	Telefono   string   `json:"telefono,omitempty"`
	Perfil     string   `json:"perfil,omitempty"`
	Permisos   []string `json:"permisos,omitempty"`
}

// ActualizarUsuarioRequest body para PUT /api/usuarios/:id. Campos nil no se
// tocan; Contrasena no vacía se re-hashea.
type ActualizarUsuarioRequest struct {
	Usuario    *string  `json:"usuario,omitempty"`
	Contrasena *string  `json:"contrasena,omitempty"`
	Nombre     *string  `json:"nombre,omitempty"`
	Apellido   *string  `json:"apellido,omitempty"`
	Cedula     *string  `json:"cedula,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Telefono   *string  `json:"telefono,omitempty"`
	Perfil     *string  `json:"perfil,omitempty"`
	Permisos   []string `json:"permisos,omitempty"`
}

// UsuarioResponse usuario en respuestas. Nunca incluye la contraseña.
type UsuarioResponse struct {
	ID            string    `json:"id"`
	Usuario       string    `json:"usuario"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido,omitempty"`
	Cedula        string    `json:"cedula"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono,omitempty"`
	Perfil        string    `json:"perfil"`
	Permisos      []string  `json:"permisos"`
	Estado        string    `json:"estado"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
