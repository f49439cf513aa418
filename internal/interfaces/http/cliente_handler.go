package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/application/usecase"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// ClienteHandler maneja las peticiones HTTP para clientes (protegido).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearClienteRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.Respuesta{data=dto.ClienteResponse}
// @Failure      400   {object}  dto.Respuesta
// @Router       /api/clientes [post]
func (h *ClienteHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if in.Cedula == "" || in.Nombre == "" {
		return respondValidacion(c, "Datos incompletos", []dto.ErrorValidacion{
			{Campo: "cedula", Mensaje: "cedula y nombre son requeridos"},
		})
	}
	out, err := h.uc.Crear(c.Context(), GetUsuario(c), in)
	if err != nil {
		return manejarError(c, err, "Cliente no encontrado")
	}
	return respondCreado(c, "Cliente creado exitosamente", out)
}

// ObtenerPorID godoc
// @Summary      Obtener cliente por ID
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.Respuesta{data=dto.ClienteResponse}
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	out, err := h.uc.ObtenerPorID(c.Context(), id)
	if err != nil {
		return manejarError(c, err, "Cliente no encontrado")
	}
	return respondOK(c, "Cliente obtenido exitosamente", out)
}

// Listar godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200     {object}  dto.Respuesta{data=[]dto.ClienteResponse}
// @Router       /api/clientes [get]
func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	out, pag, err := h.uc.Listar(c.Context(), c.Query("search"), c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return manejarError(c, err, "Cliente no encontrado")
	}
	return respondOKPaginado(c, "Clientes obtenidos exitosamente", out, pag)
}

// Actualizar godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.ActualizarClienteRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Respuesta{data=dto.ClienteResponse}
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.ActualizarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Actualizar(c.Context(), GetUsuario(c), id, in)
	if err != nil {
		return manejarError(c, err, "Cliente no encontrado")
	}
	return respondOK(c, "Cliente actualizado exitosamente", out)
}

// CambiarEstado godoc
// @Summary      Activar o inactivar cliente
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del cliente"
// @Param        body  body  dto.CambiarEstadoRequest  true  "estado: activo | inactivo"
// @Success      200   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/clientes/{id}/estado [patch]
func (h *ClienteHandler) CambiarEstado(c *fiber.Ctx) error {
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
		return manejarError(c, err, "Cliente no encontrado")
	}
	return respondOK(c, "Estado del cliente actualizado exitosamente", nil)
}

// Eliminar godoc
// @Summary      Inactivar cliente (borrado lógico)
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.uc.CambiarEstado(c.Context(), GetUsuario(c), id, entity.EstadoInactivo); err != nil {
		return manejarError(c, err, "Cliente no encontrado")
	}
	return respondOK(c, "Cliente eliminado exitosamente", nil)
}
