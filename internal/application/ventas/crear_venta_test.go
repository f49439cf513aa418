package ventas_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellano/gestion-api/internal/application/auditoria"
	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/application/ventas"
	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
	"github.com/jcastellano/gestion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Embeben la interfaz para no implementar métodos que el
// caso de uso no toca; llamarlos haría panic y delataría un acceso inesperado.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	repository.UsuarioRepository
	usuarios map[string]*entity.Usuario
}

func (f *fakeUsuarioRepo) ObtenerPorID(_ context.Context, id string) (*entity.Usuario, error) {
	return f.usuarios[id], nil
}

type fakeClienteRepo struct {
	repository.ClienteRepository
	clientes map[string]*entity.Cliente
}

func (f *fakeClienteRepo) ObtenerPorCedula(_ context.Context, cedula string) (*entity.Cliente, error) {
	return f.clientes[cedula], nil
}

type fakeProductoRepo struct {
	repository.ProductoRepository
	productos  map[int]*entity.Producto
	descuentos []int // IDs en el orden en que se descontó stock
}

func (f *fakeProductoRepo) ObtenerPorID(_ context.Context, id int) (*entity.Producto, error) {
	return f.productos[id], nil
}

func (f *fakeProductoRepo) DescontarStock(_ context.Context, id, cantidad int) (bool, error) {
	p, ok := f.productos[id]
	if !ok || p.CantidadProducto < cantidad {
		return false, nil
	}
	p.CantidadProducto -= cantidad
	f.descuentos = append(f.descuentos, id)
	return true, nil
}

type fakeServicioRepo struct {
	repository.ServicioRepository
	servicios map[int]*entity.Servicio
}

func (f *fakeServicioRepo) ObtenerPorID(_ context.Context, id int) (*entity.Servicio, error) {
	return f.servicios[id], nil
}

type fakeVentaRepo struct {
	repository.VentaRepository
	siguiente int
	creadas   []*entity.Venta
}

func (f *fakeVentaRepo) Crear(_ context.Context, v *entity.Venta) error {
	f.siguiente++
	v.ID = f.siguiente
	f.creadas = append(f.creadas, v)
	return nil
}

func (f *fakeVentaRepo) ObtenerPorID(_ context.Context, id int) (*entity.Venta, error) {
	for _, v := range f.creadas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

// fakeTxRunner ejecuta el callback sin transacción real, con los mismos fakes.
type fakeTxRunner struct {
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
	fallar       error // si no es nil, el "commit" falla después del callback
}

func (f *fakeTxRunner) RunVenta(ctx context.Context, fn func(
	repository.VentaRepository, repository.ProductoRepository) error,
) error {
	if err := fn(f.ventaRepo, f.productoRepo); err != nil {
		return err
	}
	return f.fallar
}

type fakeCambioRepo struct {
	cambios []*entity.Cambio
}

func (f *fakeCambioRepo) Crear(_ context.Context, c *entity.Cambio) error {
	f.cambios = append(f.cambios, c)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

type escenario struct {
	uc        *ventas.CrearVentaUseCase
	ventas    *fakeVentaRepo
	productos *fakeProductoRepo
	cambios   *fakeCambioRepo
}

func nuevoEscenario() *escenario {
	usuarios := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{
		"u-1": {ID: "u-1", Usuario: "jperez", Nombre: "Juan", Apellido: "Pérez", Estado: entity.EstadoActivo},
	}}
	clientes := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"123456": {ID: 1, Cedula: "123456", Nombre: "Ana", Apellido: "Gómez"},
	}}
	productos := &fakeProductoRepo{productos: map[int]*entity.Producto{
		10: {ID: 10, Nombre: "Aceite 20W50", CantidadProducto: 5, Estado: entity.EstadoActivo},
		11: {ID: 11, Nombre: "Filtro de aire", CantidadProducto: 2, Estado: entity.EstadoActivo},
	}}
	servicios := &fakeServicioRepo{servicios: map[int]*entity.Servicio{
		20: {ID: 20, Nombre: "Cambio de aceite", Costo: decimal.NewFromInt(30)},
	}}
	ventasRepo := &fakeVentaRepo{}
	cambios := &fakeCambioRepo{}
	bitacora := auditoria.NewRegistrador(cambios, logger.New(logger.Config{Env: "development", Level: "error"}))
	tx := &fakeTxRunner{ventaRepo: ventasRepo, productoRepo: productos}

	return &escenario{
		uc: ventas.NewCrearVentaUseCase(
			tx, usuarios, clientes, productos, servicios, ventasRepo, bitacora,
		),
		ventas:    ventasRepo,
		productos: productos,
		cambios:   cambios,
	}
}

func linea(id, cantidad int, costo int64) dto.LineaVentaRequest {
	return dto.LineaVentaRequest{ID: id, Cantidad: cantidad, Costo: decimal.NewFromInt(costo)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Un producto a 50 por 2 unidades con IVA 16% debe totalizar 116.00.
func TestCrearVenta_TotalConIVA(t *testing.T) {
	esc := nuevoEscenario()

	out, err := esc.uc.CrearVenta(context.Background(), "u-1", dto.CrearVentaRequest{
		CedulaCliente: "123456",
		Productos:     []dto.LineaVentaRequest{linea(10, 2, 50)},
		IVA:           decimal.NewFromInt(16),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.TotalPagar.Equal(decimal.RequireFromString("116.00")),
		"total esperado 116.00, obtenido %s", out.TotalPagar)
	assert.Equal(t, "Juan Pérez", out.Vendedor)
	assert.Equal(t, entity.EstadoActivo, out.Estado)
	assert.Equal(t, "efectivo", out.MetodoPago, "sin método de pago explícito se asume efectivo")
	assert.Equal(t, 3, esc.productos.productos[10].CantidadProducto, "el stock debe quedar descontado")
}

// El IVA se aplica sobre productos y servicios juntos.
func TestCrearVenta_SubtotalIncluyeServicios(t *testing.T) {
	esc := nuevoEscenario()

	out, err := esc.uc.CrearVenta(context.Background(), "u-1", dto.CrearVentaRequest{
		CedulaCliente: "123456",
		Productos:     []dto.LineaVentaRequest{linea(10, 1, 50)},
		Servicios:     []dto.LineaVentaRequest{linea(20, 1, 30)},
		IVA:           decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// (50 + 30) * 1.10 = 88.00
	assert.True(t, out.TotalPagar.Equal(decimal.RequireFromString("88.00")),
		"total esperado 88.00, obtenido %s", out.TotalPagar)
}

// IVA cero: el total es el subtotal redondeado.
func TestCrearVenta_SinIVA(t *testing.T) {
	esc := nuevoEscenario()

	out, err := esc.uc.CrearVenta(context.Background(), "u-1", dto.CrearVentaRequest{
		CedulaCliente: "123456",
		Servicios:     []dto.LineaVentaRequest{linea(20, 2, 30)},
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.TotalPagar.Equal(decimal.NewFromInt(60)))
}

func TestCrearVenta_UsuarioNoEncontrado(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.CrearVenta(context.Background(), "no-existe", dto.CrearVentaRequest{
		CedulaCliente: "123456",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUsuarioNoEncontrado))
	assert.Equal(t, "Usuario no encontrado", err.Error())
}

func TestCrearVenta_CedulaRequerida(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.CrearVenta(context.Background(), "u-1", dto.CrearVentaRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEntradaInvalida))
	assert.Equal(t, "La cédula del cliente es requerida", err.Error())
}

func TestCrearVenta_ClienteNoEncontrado(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.CrearVenta(context.Background(), "u-1", dto.CrearVentaRequest{
		CedulaCliente: "999999",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrClienteNoEncontrado))
	assert.Equal(t, "Cliente no encontrado", err.Error())
}

func TestCrearVenta_ProductoNoEncontrado(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.CrearVenta(context.Background(), "u-1", dto.CrearVentaRequest{
		CedulaCliente: "123456",
		Productos:     []dto.LineaVentaRequest{linea(99, 1, 10)},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoEncontrado))
	assert.Equal(t, "Producto 99 no encontrado", err.Error())
}

func TestCrearVenta_ServicioNoEncontrado(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.CrearVenta(context.Background(), "u-1", dto.CrearVentaRequest{
		CedulaCliente: "123456",
		Servicios:     []dto.LineaVentaRequest{linea(77, 1, 10)},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoEncontrado))
	assert.Equal(t, "Servicio 77 no encontrado", err.Error())
}

// Stock insuficiente detectado en la validación: no se escribe nada.
func TestCrearVenta_StockInsuficiente_SinEscrituras(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.CrearVenta(context.Background(), "u-1", dto.CrearVentaRequest{
		CedulaCliente: "123456",
		Productos:     []dto.LineaVentaRequest{linea(11, 3, 25)}, // solo hay 2
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStockInsuficiente))
	assert.Equal(t, "Stock insuficiente para el producto Filtro de aire", err.Error())

	assert.Empty(t, esc.ventas.creadas, "no debe persistirse la venta")
	assert.Empty(t, esc.productos.descuentos, "no debe descontarse stock")
	assert.Equal(t, 2, esc.productos.productos[11].CantidadProducto)
}

// La venta creada queda auditada con la acción Agregar.
func TestCrearVenta_RegistraAuditoria(t *testing.T) {
	esc := nuevoEscenario()

	_, err := esc.uc.CrearVenta(context.Background(), "u-1", dto.CrearVentaRequest{
		CedulaCliente: "123456",
		Productos:     []dto.LineaVentaRequest{linea(10, 1, 50)},
	})
	require.NoError(t, err)

	require.Len(t, esc.cambios.cambios, 1)
	cambio := esc.cambios.cambios[0]
	assert.Equal(t, "jperez", cambio.Usuario)
	assert.Equal(t, entity.AccionAgregar, cambio.Accion)
	assert.Equal(t, "venta", cambio.Entidad)
	assert.Equal(t, "1", cambio.EntidadID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de CalcularTotal
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularTotal_RedondeaADosDecimales(t *testing.T) {
	casos := []struct {
		subtotal string
		iva      string
		esperado string
	}{
		{"100", "16", "116.00"},
		{"100", "0", "100.00"},
		{"33.33", "19", "39.66"},
		{"0.01", "19", "0.01"},
		{"0", "19", "0.00"},
	}
	for _, c := range casos {
		total := ventas.CalcularTotal(
			decimal.RequireFromString(c.subtotal),
			decimal.RequireFromString(c.iva),
		)
		assert.True(t, total.Equal(decimal.RequireFromString(c.esperado)),
			"subtotal %s con IVA %s%%: esperado %s, obtenido %s", c.subtotal, c.iva, c.esperado, total)
	}
}
