package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado        = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrClienteNoEncontrado = errors.New("cliente no encontrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrNoAutorizado        = errors.New("no autorizado")
	ErrProhibido           = errors.New("acceso denegado")
	ErrStockInsuficiente   = errors.New("stock insuficiente")
)
