package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/application/usecase"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// UsuarioHandler maneja las peticiones HTTP para usuarios (protegido, requiere
// el permiso de usuarios).
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Crear registra un usuario nuevo con su contraseña hasheada.
func (h *UsuarioHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if in.Usuario == "" || in.Contrasena == "" || in.Nombre == "" {
		return respondValidacion(c, "Datos incompletos", []dto.ErrorValidacion{
			{Campo: "usuario", Mensaje: "usuario, contrasena y nombre son requeridos"},
		})
	}
	out, err := h.uc.Crear(c.Context(), GetUsuario(c), in)
	if err != nil {
		return manejarError(c, err, "Usuario no encontrado")
	}
	return respondCreado(c, "Usuario creado exitosamente", out)
}

// ObtenerPorID devuelve un usuario por su ID (sin contraseña).
func (h *UsuarioHandler) ObtenerPorID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	out, err := h.uc.ObtenerPorID(c.Context(), id)
	if err != nil {
		return manejarError(c, err, "Usuario no encontrado")
	}
	return respondOK(c, "Usuario obtenido exitosamente", out)
}

// Listar pagina los usuarios con búsqueda opcional.
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	out, pag, err := h.uc.Listar(c.Context(), c.Query("search"), c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return manejarError(c, err, "Usuario no encontrado")
	}
	return respondOKPaginado(c, "Usuarios obtenidos exitosamente", out, pag)
}

// Actualizar aplica una actualización parcial; la contraseña solo cambia si
// viene no vacía.
func (h *UsuarioHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Actualizar(c.Context(), GetUsuario(c), id, in)
	if err != nil {
		return manejarError(c, err, "Usuario no encontrado")
	}
	return respondOK(c, "Usuario actualizado exitosamente", out)
}

// CambiarEstado activa o inactiva un usuario. Un usuario no puede cambiarse
// el estado a sí mismo.
func (h *UsuarioHandler) CambiarEstado(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if in.Estado != entity.EstadoActivo && in.Estado != entity.EstadoInactivo {
		return respondError(c, fiber.StatusBadRequest, "Estado inválido: debe ser activo o inactivo")
	}
	if err := h.uc.CambiarEstado(c.Context(), GetUsuario(c), GetUserID(c), id, in.Estado); err != nil {
		return manejarError(c, err, "Usuario no encontrado")
	}
	return respondOK(c, "Estado del usuario actualizado exitosamente", nil)
}

// Eliminar inactiva un usuario (borrado lógico, con guarda de autobloqueo).
func (h *UsuarioHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.uc.CambiarEstado(c.Context(), GetUsuario(c), GetUserID(c), id, entity.EstadoInactivo); err != nil {
		return manejarError(c, err, "Usuario no encontrado")
	}
	return respondOK(c, "Usuario eliminado exitosamente", nil)
}
