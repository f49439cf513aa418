package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/pkg/jwt"
)

// Locals keys del usuario autenticado en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsuario  = "usuario"
	LocalNombre   = "nombre"
	LocalPermisos = "permisos"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad del usuario
// en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, fiber.StatusUnauthorized, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, fiber.StatusUnauthorized, "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, "token inválido o expirado")
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsuario, claims.Usuario)
		c.Locals(LocalNombre, claims.Nombre)
		c.Locals(LocalPermisos, entity.NuevoConjuntoPermisos(claims.Permisos))
		return c.Next()
	}
}

// RequierePermiso corta con 403 si el conjunto de permisos del token no
// incluye el permiso pedido. Debe ir después de AuthMiddleware.
func RequierePermiso(p entity.Permiso) fiber.Handler {
	return func(c *fiber.Ctx) error {
		permisos := GetPermisos(c)
		if !permisos.Contiene(p) {
			return respondError(c, fiber.StatusForbidden, "No tiene permiso para esta operación")
		}
		return c.Next()
	}
}

// GetUserID devuelve el ID del usuario autenticado (después del middleware).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUsuario devuelve el nombre de usuario (login) del token.
func GetUsuario(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsuario).(string)
	return s
}

// GetNombre devuelve el nombre para mostrar del usuario del token.
func GetNombre(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalNombre).(string)
	return s
}

// GetPermisos devuelve el conjunto de permisos del token; vacío si no hay.
func GetPermisos(c *fiber.Ctx) entity.ConjuntoPermisos {
	p, _ := c.Locals(LocalPermisos).(entity.ConjuntoPermisos)
	if p == nil {
		return entity.ConjuntoPermisos{}
	}
	return p
}
