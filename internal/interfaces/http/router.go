package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastellano/gestion-api/internal/application/auth"
	"github.com/jcastellano/gestion-api/internal/application/usecase"
	"github.com/jcastellano/gestion-api/internal/application/ventas"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/infrastructure/factura"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClienteUC   *usecase.ClienteUseCase
	ProductoUC  *usecase.ProductoUseCase
	ServicioUC  *usecase.ServicioUseCase
	ProveedorUC *usecase.ProveedorUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	CrearVenta  *ventas.CrearVentaUseCase
	VentaUC     *ventas.VentaUseCase
	FacturaUC   *ventas.FacturaUseCase
	FacturaHTML *factura.HTMLRenderer
	FacturaPDF  *factura.PDFRenderer
	JWTSecret   string
}

// Router registra las rutas de la API. Las rutas públicas (login y factura)
// van antes del grupo protegido; el resto exige Bearer Token y, para
// mutaciones, el permiso del módulo correspondiente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Factura (público: se abre directo en el navegador para imprimir)
	facturaHandler := NewFacturaHandler(deps.FacturaUC, deps.FacturaHTML, deps.FacturaPDF)
	api.Get("/ventas/:id/factura", facturaHandler.HTML)
	api.Get("/ventas/:id/factura/pdf", facturaHandler.PDF)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.Listar)
	clientes.Get("/:id", clienteHandler.ObtenerPorID)
	clientes.Post("/", RequierePermiso(entity.PermisoClientes), clienteHandler.Crear)
	clientes.Put("/:id", RequierePermiso(entity.PermisoClientes), clienteHandler.Actualizar)
	clientes.Patch("/:id/estado", RequierePermiso(entity.PermisoClientes), clienteHandler.CambiarEstado)
	clientes.Delete("/:id", RequierePermiso(entity.PermisoClientes), clienteHandler.Eliminar)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.Listar)
	productos.Post("/stock/check", productoHandler.VerificarStock)
	productos.Get("/:id", productoHandler.ObtenerPorID)
	productos.Post("/", RequierePermiso(entity.PermisoProductos), productoHandler.Crear)
	productos.Put("/:id", RequierePermiso(entity.PermisoProductos), productoHandler.Actualizar)
	productos.Put("/:id/stock/set", RequierePermiso(entity.PermisoProductos), productoHandler.FijarStock)
	productos.Put("/:id/stock/add", RequierePermiso(entity.PermisoProductos), productoHandler.AgregarStock)
	productos.Patch("/:id/estado", RequierePermiso(entity.PermisoProductos), productoHandler.CambiarEstado)
	productos.Delete("/:id", RequierePermiso(entity.PermisoProductos), productoHandler.Eliminar)

	// Servicios
	servicios := protected.Group("/servicios")
	servicioHandler := NewServicioHandler(deps.ServicioUC)
	servicios.Get("/", servicioHandler.Listar)
	servicios.Get("/:id", servicioHandler.ObtenerPorID)
	servicios.Post("/", RequierePermiso(entity.PermisoServicios), servicioHandler.Crear)
	servicios.Put("/:id", RequierePermiso(entity.PermisoServicios), servicioHandler.Actualizar)
	servicios.Patch("/:id/estado", RequierePermiso(entity.PermisoServicios), servicioHandler.CambiarEstado)
	servicios.Delete("/:id", RequierePermiso(entity.PermisoServicios), servicioHandler.Eliminar)

	// Proveedores
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Get("/", proveedorHandler.Listar)
	proveedores.Get("/:id", proveedorHandler.ObtenerPorID)
	proveedores.Post("/", RequierePermiso(entity.PermisoProveedores), proveedorHandler.Crear)
	proveedores.Put("/:id", RequierePermiso(entity.PermisoProveedores), proveedorHandler.Actualizar)
	proveedores.Patch("/:id/estado", RequierePermiso(entity.PermisoProveedores), proveedorHandler.CambiarEstado)
	proveedores.Delete("/:id", RequierePermiso(entity.PermisoProveedores), proveedorHandler.Eliminar)

	// Usuarios (todo el módulo requiere el permiso de usuarios)
	usuarios := protected.Group("/usuarios", RequierePermiso(entity.PermisoUsuarios))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.Listar)
	usuarios.Get("/:id", usuarioHandler.ObtenerPorID)
	usuarios.Post("/", usuarioHandler.Crear)
	usuarios.Put("/:id", usuarioHandler.Actualizar)
	usuarios.Patch("/:id/estado", usuarioHandler.CambiarEstado)
	usuarios.Delete("/:id", usuarioHandler.Eliminar)

	// Ventas (rutas fijas antes que /:id)
	ventasGroup := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.CrearVenta, deps.VentaUC)
	ventasGroup.Get("/", ventaHandler.Listar)
	ventasGroup.Get("/stats", RequierePermiso(entity.PermisoReportes), ventaHandler.Estadisticas)
	ventasGroup.Get("/cliente/:cedula", ventaHandler.ListarPorCedula)
	ventasGroup.Get("/:id", ventaHandler.Obtener)
	ventasGroup.Post("/", RequierePermiso(entity.PermisoVentas), ventaHandler.Crear)
	ventasGroup.Put("/:id", RequierePermiso(entity.PermisoVentas), ventaHandler.Actualizar)
	ventasGroup.Delete("/:id", RequierePermiso(entity.PermisoVentas), ventaHandler.Eliminar)
}
