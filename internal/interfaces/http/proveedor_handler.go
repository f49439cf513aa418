package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/application/usecase"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// ProveedorHandler maneja las peticiones HTTP para proveedores (protegido).
type ProveedorHandler struct {
	uc *usecase.ProveedorUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *usecase.ProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// Crear registra un proveedor nuevo.
func (h *ProveedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProveedorRequest
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
		return manejarError(c, err, "Proveedor no encontrado")
	}
	return respondCreado(c, "Proveedor creado exitosamente", out)
}

// ObtenerPorID devuelve un proveedor por su ID.
func (h *ProveedorHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	out, err := h.uc.ObtenerPorID(c.Context(), id)
	if err != nil {
		return manejarError(c, err, "Proveedor no encontrado")
	}
	return respondOK(c, "Proveedor obtenido exitosamente", out)
}

// Listar pagina los proveedores con búsqueda opcional.
func (h *ProveedorHandler) Listar(c *fiber.Ctx) error {
	out, pag, err := h.uc.Listar(c.Context(), c.Query("search"), c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return manejarError(c, err, "Proveedor no encontrado")
	}
	return respondOKPaginado(c, "Proveedores obtenidos exitosamente", out, pag)
}

// Actualizar aplica una actualización parcial.
func (h *ProveedorHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.ActualizarProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Actualizar(c.Context(), GetUsuario(c), id, in)
	if err != nil {
		return manejarError(c, err, "Proveedor no encontrado")
	}
	return respondOK(c, "Proveedor actualizado exitosamente", out)
}

// CambiarEstado activa o inactiva el proveedor.
func (h *ProveedorHandler) CambiarEstado(c *fiber.Ctx) error {
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
		return manejarError(c, err, "Proveedor no encontrado")
	}
	return respondOK(c, "Estado del proveedor actualizado exitosamente", nil)
}

// Eliminar inactiva el proveedor (borrado lógico).
func (h *ProveedorHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.uc.CambiarEstado(c.Context(), GetUsuario(c), id, entity.EstadoInactivo); err != nil {
		return manejarError(c, err, "Proveedor no encontrado")
	}
	return respondOK(c, "Proveedor eliminado exitosamente", nil)
}
