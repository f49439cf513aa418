package ventas

import (
	"context"

	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

// DatosFactura todo lo que un renderer necesita para pintar la factura de una
// venta. Cliente puede ser nil y los mapas de nombres pueden no cubrir todos
// los IDs: los renderers deben tener fallback para ambos casos.
type DatosFactura struct {
	Venta           *entity.Venta
	Cliente         *entity.Cliente
	NombresProducto map[int]string
	NombresServicio map[int]string
}

// FacturaUseCase reúne los datos de una factura. Solo la venta es obligatoria;
// cliente y catálogos se resuelven en modo mejor esfuerzo para que una factura
// vieja siga imprimiéndose aunque el cliente o los productos hayan sido
// eliminados después de la venta.
type FacturaUseCase struct {
	ventaRepo    repository.VentaRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	servicioRepo repository.ServicioRepository
}

func NewFacturaUseCase(
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	servicioRepo repository.ServicioRepository,
) *FacturaUseCase {
	return &FacturaUseCase{
		ventaRepo:    ventaRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		servicioRepo: servicioRepo,
	}
}

// Datos devuelve los datos de factura de la venta o ErrNoEncontrado.
func (uc *FacturaUseCase) Datos(ctx context.Context, id int) (*DatosFactura, error) {
	venta, err := uc.ventaRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNoEncontrado
	}

	datos := &DatosFactura{
		Venta:           venta,
		NombresProducto: make(map[int]string, len(venta.Productos)),
		NombresServicio: make(map[int]string, len(venta.Servicios)),
	}

	if venta.CedulaCliente != "" {
		if cliente, err := uc.clienteRepo.ObtenerPorCedula(ctx, venta.CedulaCliente); err == nil {
			datos.Cliente = cliente
		}
	}
	for _, linea := range venta.Productos {
		if p, err := uc.productoRepo.ObtenerPorID(ctx, linea.ID); err == nil && p != nil {
			datos.NombresProducto[linea.ID] = p.Nombre
		}
	}
	for _, linea := range venta.Servicios {
		if s, err := uc.servicioRepo.ObtenerPorID(ctx, linea.ID); err == nil && s != nil {
			datos.NombresServicio[linea.ID] = s.Nombre
		}
	}
	return datos, nil
}
