package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/application/usecase"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// ProductoHandler maneja las peticiones HTTP para productos (protegido).
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Respuesta{data=dto.ProductoResponse}
// @Failure      400   {object}  dto.Respuesta
// @Router       /api/productos [post]
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
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
		return manejarError(c, err, "Producto no encontrado")
	}
	return respondCreado(c, "Producto creado exitosamente", out)
}

// ObtenerPorID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.Respuesta{data=dto.ProductoResponse}
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	out, err := h.uc.ObtenerPorID(c.Context(), id)
	if err != nil {
		return manejarError(c, err, "Producto no encontrado")
	}
	return respondOK(c, "Producto obtenido exitosamente", out)
}

// Listar godoc
// @Summary      Listar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200     {object}  dto.Respuesta{data=[]dto.ProductoResponse}
// @Router       /api/productos [get]
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	out, pag, err := h.uc.Listar(c.Context(), c.Query("search"), c.QueryInt("page", 1), c.QueryInt("limit", 10))
	if err != nil {
		return manejarError(c, err, "Producto no encontrado")
	}
	return respondOKPaginado(c, "Productos obtenidos exitosamente", out, pag)
}

// Actualizar godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ActualizarProductoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Respuesta{data=dto.ProductoResponse}
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.Actualizar(c.Context(), GetUsuario(c), id, in)
	if err != nil {
		return manejarError(c, err, "Producto no encontrado")
	}
	return respondOK(c, "Producto actualizado exitosamente", out)
}

// CambiarEstado godoc
// @Summary      Activar o inactivar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.CambiarEstadoRequest  true  "estado: activo | inactivo"
// @Success      200   {object}  dto.Respuesta
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/productos/{id}/estado [patch]
func (h *ProductoHandler) CambiarEstado(c *fiber.Ctx) error {
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
		return manejarError(c, err, "Producto no encontrado")
	}
	return respondOK(c, "Estado del producto actualizado exitosamente", nil)
}

// Eliminar godoc
// @Summary      Inactivar producto (borrado lógico)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := h.uc.CambiarEstado(c.Context(), GetUsuario(c), id, entity.EstadoInactivo); err != nil {
		return manejarError(c, err, "Producto no encontrado")
	}
	return respondOK(c, "Producto eliminado exitosamente", nil)
}

// VerificarStock godoc
// @Summary      Verificar disponibilidad de stock
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckStockRequest  true  "Items a verificar"
// @Success      200   {object}  dto.Respuesta{data=[]dto.DisponibilidadStock}
// @Router       /api/productos/stock/check [post]
func (h *ProductoHandler) VerificarStock(c *fiber.Ctx) error {
	var in dto.CheckStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.VerificarStock(c.Context(), in.Items)
	if err != nil {
		return manejarError(c, err, "Producto no encontrado")
	}
	return respondOK(c, "Disponibilidad verificada", out)
}

// FijarStock godoc
// @Summary      Fijar la cantidad exacta de stock de un producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.FijarStockRequest  true  "Cantidad absoluta"
// @Success      200   {object}  dto.Respuesta{data=dto.StockResponse}
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/productos/{id}/stock/set [put]
func (h *ProductoHandler) FijarStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.FijarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.FijarStock(c.Context(), GetUsuario(c), id, in.Cantidad)
	if err != nil {
		return manejarError(c, err, "Producto no encontrado")
	}
	return respondOK(c, "Stock actualizado exitosamente", out)
}

// AgregarStock godoc
// @Summary      Sumar unidades al stock de un producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.AgregarStockRequest  true  "Cantidad a sumar (positiva)"
// @Success      200   {object}  dto.Respuesta{data=dto.StockResponse}
// @Failure      404   {object}  dto.Respuesta
// @Router       /api/productos/{id}/stock/add [put]
func (h *ProductoHandler) AgregarStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.AgregarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	out, err := h.uc.AgregarStock(c.Context(), GetUsuario(c), id, in.Cantidad)
	if err != nil {
		return manejarError(c, err, "Producto no encontrado")
	}
	return respondOK(c, "Stock agregado exitosamente", out)
}
