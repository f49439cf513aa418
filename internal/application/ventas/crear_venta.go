package ventas

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastellano/gestion-api/internal/application/auditoria"
	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

// MetodoPagoDefecto se usa cuando el body no trae método de pago.
const MetodoPagoDefecto = "efectivo"

// CrearVentaUseCase arma el flujo de creación de venta: validación contra el
// estado de cliente/productos/servicios, cálculo de totales con decimales,
// persistencia y descuento de stock en una sola transacción, y auditoría.
type CrearVentaUseCase struct {
	txRunner     TxRunner
	usuarioRepo  repository.UsuarioRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	servicioRepo repository.ServicioRepository
	ventaRepo    repository.VentaRepository
	bitacora     *auditoria.Registrador
}

// NewCrearVentaUseCase construye el caso de uso.
func NewCrearVentaUseCase(
	txRunner TxRunner,
	usuarioRepo repository.UsuarioRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	servicioRepo repository.ServicioRepository,
	ventaRepo repository.VentaRepository,
	bitacora *auditoria.Registrador,
) *CrearVentaUseCase {
	return &CrearVentaUseCase{
		txRunner:     txRunner,
		usuarioRepo:  usuarioRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		servicioRepo: servicioRepo,
		ventaRepo:    ventaRepo,
		bitacora:     bitacora,
	}
}

// CrearVenta valida la solicitud, calcula el total y persiste la venta
// descontando stock dentro de la misma transacción.
//
// Secuencia de validación (falla rápido, sin escrituras):
//  1. el usuario autenticado debe resolver (aporta el nombre del vendedor)
//  2. la cédula del cliente es requerida
//  3. el cliente debe existir por cédula
//  4. cada producto debe existir y tener existencias suficientes
//  5. cada servicio debe existir
//
// La verificación de stock del paso 4 es informativa: la garantía contra el
// oversell de dos ventas concurrentes es el descuento condicional dentro de
// la transacción, que falla con cero filas afectadas si ya no alcanza.
func (uc *CrearVentaUseCase) CrearVenta(ctx context.Context, usuarioID string, in dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	u, err := uc.usuarioRepo.ObtenerPorID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nuevoErrVenta(domain.ErrUsuarioNoEncontrado, "Usuario no encontrado")
	}

	if in.CedulaCliente == "" {
		return nil, nuevoErrVenta(domain.ErrEntradaInvalida, "La cédula del cliente es requerida")
	}
	cliente, err := uc.clienteRepo.ObtenerPorCedula(ctx, in.CedulaCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nuevoErrVenta(domain.ErrClienteNoEncontrado, "Cliente no encontrado")
	}

	for _, item := range in.Productos {
		if item.Cantidad <= 0 {
			return nil, nuevoErrVenta(domain.ErrEntradaInvalida, "Cantidad inválida para el producto %d", item.ID)
		}
		p, err := uc.productoRepo.ObtenerPorID(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, nuevoErrVenta(domain.ErrNoEncontrado, "Producto %d no encontrado", item.ID)
		}
		if p.CantidadProducto < item.Cantidad {
			return nil, nuevoErrVenta(domain.ErrStockInsuficiente, "Stock insuficiente para el producto %s", p.Nombre)
		}
	}

	for _, item := range in.Servicios {
		if item.Cantidad <= 0 {
			return nil, nuevoErrVenta(domain.ErrEntradaInvalida, "Cantidad inválida para el servicio %d", item.ID)
		}
		s, err := uc.servicioRepo.ObtenerPorID(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, nuevoErrVenta(domain.ErrNoEncontrado, "Servicio %d no encontrado", item.ID)
		}
	}

	metodoPago := in.MetodoPago
	if metodoPago == "" {
		metodoPago = MetodoPagoDefecto
	}

	venta := &entity.Venta{
		CedulaCliente: in.CedulaCliente,
		Productos:     aLineas(in.Productos),
		Servicios:     aLineas(in.Servicios),
		IVA:           in.IVA,
		MetodoPago:    metodoPago,
		Vendedor:      u.NombreCompleto(),
		Estado:        entity.EstadoActivo,
		FechaVenta:    time.Now(),
	}
	venta.TotalPagar = CalcularTotal(venta.Subtotal(), in.IVA)

	err = uc.txRunner.RunVenta(ctx, func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
	) error {
		if err := ventaRepo.Crear(ctx, venta); err != nil {
			return err
		}
		for _, linea := range venta.Productos {
			ok, err := productoRepo.DescontarStock(ctx, linea.ID, linea.Cantidad)
			if err != nil {
				return err
			}
			if !ok {
				// Otra venta consumió el stock entre la validación y aquí.
				return nuevoErrVenta(domain.ErrStockInsuficiente, "Stock insuficiente para el producto %d", linea.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.bitacora.Registrar(ctx, u.Usuario, entity.AccionAgregar, "venta", strconv.Itoa(venta.ID),
		"registró una venta por "+venta.TotalPagar.StringFixed(2)+" para la cédula "+venta.CedulaCliente)

	// Releer por ID; si la relectura no encuentra la fila la operación igual
	// fue exitosa y se responde con payload nulo.
	creada, err := uc.ventaRepo.ObtenerPorID(ctx, venta.ID)
	if err != nil || creada == nil {
		return nil, nil
	}
	return AVentaResponse(creada), nil
}

// CalcularTotal aplica el IVA porcentual al subtotal y redondea a 2 decimales
// (half-up).
func CalcularTotal(subtotal, iva decimal.Decimal) decimal.Decimal {
	return subtotal.Add(subtotal.Mul(iva).Div(decimal.NewFromInt(100))).Round(2)
}

func aLineas(items []dto.LineaVentaRequest) []entity.LineaVenta {
	lineas := make([]entity.LineaVenta, 0, len(items))
	for _, it := range items {
		lineas = append(lineas, entity.LineaVenta{ID: it.ID, Cantidad: it.Cantidad, Costo: it.Costo})
	}
	return lineas
}

// AVentaResponse mapea la entidad a DTO.
func AVentaResponse(v *entity.Venta) *dto.VentaResponse {
	if v == nil {
		return nil
	}
	resp := &dto.VentaResponse{
		ID:            v.ID,
		CedulaCliente: v.CedulaCliente,
		Productos:     make([]dto.LineaVentaResponse, 0, len(v.Productos)),
		Servicios:     make([]dto.LineaVentaResponse, 0, len(v.Servicios)),
		IVA:           v.IVA,
		TotalPagar:    v.TotalPagar,
		MetodoPago:    v.MetodoPago,
		Vendedor:      v.Vendedor,
		Estado:        v.Estado,
		FechaVenta:    v.FechaVenta,
	}
	for _, l := range v.Productos {
		resp.Productos = append(resp.Productos, dto.LineaVentaResponse{ID: l.ID, Cantidad: l.Cantidad, Costo: l.Costo})
	}
	for _, l := range v.Servicios {
		resp.Servicios = append(resp.Servicios, dto.LineaVentaResponse{ID: l.ID, Cantidad: l.Cantidad, Costo: l.Costo})
	}
	return resp
}
