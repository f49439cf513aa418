package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellano/gestion-api/internal/application/auth"
	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/domain"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, contrasena"
// @Success      200   {object}  dto.Respuesta{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Respuesta
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if in.Usuario == "" || in.Contrasena == "" {
		return respondValidacion(c, "Datos incompletos", []dto.ErrorValidacion{
			{Campo: "usuario", Mensaje: "usuario y contrasena son requeridos"},
		})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUsuarioNoEncontrado) || errors.Is(err, domain.ErrNoAutorizado) {
			return respondError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		if errors.Is(err, domain.ErrProhibido) {
			return respondError(c, fiber.StatusForbidden, "Usuario inactivo")
		}
		return manejarError(c, err, "Usuario no encontrado")
	}
	return respondOK(c, "Inicio de sesión exitoso", out)
}
