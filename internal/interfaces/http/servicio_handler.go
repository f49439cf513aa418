package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/application/usecase"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// ServicioHandler maneja las peticiones HTTP para servicios (protegido).
type ServicioHandler struct {
	uc *usecase.ServicioUseCase
}

// NewServicioHandler construye el handler.
func NewServicioHandler(uc *usecase.ServicioUseCase) *ServicioHandler {
	return &ServicioHandler{uc: uc}
}

// Crear registra un servicio nuevo.
func (h *ServicioHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearServicioRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if in.Nombre == "" {
		return respondValidacion(c, "Datos incompletos", []dto.ErrorValidacion{
			{Campo: "nombre", Mensaje: "nombre es requerido"},
		})
	}
	out, err := h.uc.Crear(c.Context(), GetUsuario(c), in)
	if err != nil {
		return manejarError(c, err, "Servicio no encontrado")
	}
	return respondCreado(c, "Servicio creado exitosamente", out)
}

// ObtenerPorID devuelve un servicio por su ID.
func (h *ServicioHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	out, err := h.uc.ObtenerPorID(c.Context(), id)
	if err != nil {
		return manejarError(c, err, "Servicio no encontrado")
	}
	return respondOK(c, "Servicio obtenido exitosamente", out)
}

// Listar pagina los servicios con búsqueda opcional.
func (h *ServicioHandler) Listar(c *fiber.Ctx) error {
	out, pag, err := h.uc.Listar(c.Context(), c.Query("search"), c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return manejarError(c, err, "Servicio no encontrado")
	}
	return respondOKPaginado(c, "Servicios obtenidos exitosamente", out, pag)
}

// Actualizar aplica una actualización parcial.
func (h *ServicioHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.ActualizarServicioRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Actualizar(c.Context(), GetUsuario(c), id, in)
	if err != nil {
		return manejarError(c, err, "Servicio no encontrado")
	}
	return respondOK(c, "Servicio actualizado exitosamente", out)
}

// CambiarEstado activa o inactiva el servicio.
func (h *ServicioHandler) CambiarEstado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if in.Estado != entity.EstadoActivo && in.Estado != entity.EstadoInactivo {
		return respondError(c, fiber.StatusBadRequest, "Estado inválido: debe ser activo o inactivo")
	}
	if err := h.uc.CambiarEstado(c.Context(), GetUsuario(c), id, in.Estado); err != nil {
		return manejarError(c, err, "Servicio no encontrado")
	}
	return respondOK(c, "Estado del servicio actualizado exitosamente", nil)
}

// Eliminar inactiva el servicio (borrado lógico).
func (h *ServicioHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.uc.CambiarEstado(c.Context(), GetUsuario(c), id, entity.EstadoInactivo); err != nil {
		return manejarError(c, err, "Servicio no encontrado")
	}
	return respondOK(c, "Servicio eliminado exitosamente", nil)
}
