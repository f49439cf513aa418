package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/application/ventas"
	"github.com/jcastellano/gestion-api/internal/domain"
)

// VentaHandler maneja las peticiones HTTP para ventas (protegido).
type VentaHandler struct {
	crearUC *ventas.CrearVentaUseCase
	uc      *ventas.VentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(crearUC *ventas.CrearVentaUseCase, uc *ventas.VentaUseCase) *VentaHandler {
	return &VentaHandler{crearUC: crearUC, uc: uc}
}

// Crear godoc
// @Summary      Registrar una venta
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearVentaRequest  true  "cedula_cliente, productos, servicios, iva, metodo_pago"
// @Success      201   {object}  dto.Respuesta{data=dto.VentaResponse}
// @Failure      400   {object}  dto.Respuesta
// @Router       /api/ventas [post]
func (h *VentaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.crearUC.CrearVenta(c.Context(), GetUserID(c), in)
	if err != nil {
		return manejarError(c, err, "Venta no encontrada")
	}
	return respondCreado(c, "Venta registrada exitosamente", out)
}

// Obtener godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.Respuesta{data=dto.VentaResponse}
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) Obtener(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	out, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return manejarError(c, err, "Venta no encontrada")
	}
	return respondOK(c, "Venta obtenida exitosamente", out)
}

// Listar godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200     {object}  dto.Respuesta{data=[]dto.VentaResponse}
// @Router       /api/ventas [get]
func (h *VentaHandler) Listar(c *fiber.Ctx) error {
	out, pag, err := h.uc.Listar(c.Context(), c.Query("search"), c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return manejarError(c, err, "Venta no encontrada")
	}
	return respondOKPaginado(c, "Ventas obtenidas exitosamente", out, pag)
}

// ListarPorCedula godoc
// @Summary      Historial de compras de un cliente
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        cedula  path  string  true  "Cédula del cliente"
// @Success      200     {object}  dto.Respuesta{data=[]dto.VentaResponse}
// @Router       /api/ventas/cliente/{cedula} [get]
func (h *VentaHandler) ListarPorCedula(c *fiber.Ctx) error {
	out, err := h.uc.ListarPorCedula(c.Context(), c.Params("cedula"))
	if err != nil {
		return manejarError(c, err, "Venta no encontrada")
	}
	return respondOK(c, "Ventas del cliente obtenidas exitosamente", out)
}

// Actualizar godoc
// @Summary      Actualizar venta
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la venta"
// @Param        body  body  dto.ActualizarVentaRequest  true  "Campos a actualizar; el total no se recalcula"
// @Success      200   {object}  dto.Respuesta{data=dto.VentaResponse}
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/ventas/{id} [put]
func (h *VentaHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.ActualizarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Actualizar(c.Context(), GetUsuario(c), id, in)
	if err != nil {
		return manejarError(c, err, "Venta no encontrada")
	}
	return respondOK(c, "Venta actualizada exitosamente", out)
}

// Eliminar godoc
// @Summary      Eliminar venta (borrado físico)
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/ventas/{id} [delete]
func (h *VentaHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.uc.Eliminar(c.Context(), GetUsuario(c), id); err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return respondError(c, fiber.StatusNotFound, "Venta no encontrada")
		}
		return manejarError(c, err, "Venta no encontrada")
	}
	return respondOK(c, "Venta eliminada exitosamente", nil)
}

// Estadisticas godoc
// @Summary      Estadísticas de ventas activas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Respuesta{data=dto.EstadisticasResponse}
// @Router       /api/ventas/stats [get]
func (h *VentaHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		return manejarError(c, err, "Venta no encontrada")
	}
	return respondOK(c, "Estadísticas obtenidas exitosamente", out)
}
