package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/application/ventas"
	"github.com/jcastellano/gestion-api/internal/domain"
)

// Helpers del sobre JSON uniforme. Todos los endpoints (menos la factura HTML)
// responden dto.Respuesta.

func respondOK(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(dto.Respuesta{Success: true, Message: message, Data: data})
}

func respondOKPaginado(c *fiber.Ctx, message string, data interface{}, p *dto.Paginacion) error {
	return c.JSON(dto.Respuesta{Success: true, Message: message, Data: data, Pagination: p})
}

func respondCreado(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Respuesta{Success: true, Message: message, Data: data})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Respuesta{Success: false, Message: message})
}

func respondValidacion(c *fiber.Ctx, message string, errs []dto.ErrorValidacion) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Respuesta{Success: false, Message: message, Errors: errs})
}

// manejarError mapea errores de dominio a estados HTTP. Los errores de venta
// llevan mensaje propio para el cliente; el resto de errores inesperados
// responden 500 con mensaje genérico (el detalle va al log, no al cliente).
func manejarError(c *fiber.Ctx, err error, noEncontrado string) error {
	var ev *ventas.ErrVenta
	if errors.As(err, &ev) {
		switch {
		case errors.Is(err, domain.ErrStockInsuficiente),
			errors.Is(err, domain.ErrEntradaInvalida),
			errors.Is(err, domain.ErrClienteNoEncontrado),
			errors.Is(err, domain.ErrUsuarioNoEncontrado),
			errors.Is(err, domain.ErrNoEncontrado):
			return respondError(c, fiber.StatusBadRequest, ev.Mensaje)
		default:
			return respondError(c, fiber.StatusInternalServerError, ev.Mensaje)
		}
	}
	switch {
	case errors.Is(err, domain.ErrNoEncontrado),
		errors.Is(err, domain.ErrUsuarioNoEncontrado),
		errors.Is(err, domain.ErrClienteNoEncontrado):
		return respondError(c, fiber.StatusNotFound, noEncontrado)
	case errors.Is(err, domain.ErrDuplicado):
		return respondError(c, fiber.StatusBadRequest, "Ya existe un registro con esos datos")
	case errors.Is(err, domain.ErrEntradaInvalida):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrStockInsuficiente):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoAutorizado):
		return respondError(c, fiber.StatusUnauthorized, "No autorizado")
	case errors.Is(err, domain.ErrProhibido):
		return respondError(c, fiber.StatusForbidden, "Operación no permitida")
	default:
		log.Error().Err(err).Str("ruta", c.Path()).Msg("error inesperado")
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
}
