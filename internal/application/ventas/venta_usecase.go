package ventas

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jcastellano/gestion-api/internal/application/auditoria"
	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

// VentaUseCase consultas y mantenimiento de ventas ya registradas. La creación
// vive en CrearVentaUseCase porque es la única operación transaccional.
type VentaUseCase struct {
	ventaRepo repository.VentaRepository
	bitacora  *auditoria.Registrador
}

func NewVentaUseCase(ventaRepo repository.VentaRepository, bitacora *auditoria.Registrador) *VentaUseCase {
	return &VentaUseCase{ventaRepo: ventaRepo, bitacora: bitacora}
}

// Obtener devuelve la venta o ErrNoEncontrado.
func (uc *VentaUseCase) Obtener(ctx context.Context, id int) (*dto.VentaResponse, error) {
	v, err := uc.ventaRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNoEncontrado
	}
	return AVentaResponse(v), nil
}

// Listar pagina las ventas, opcionalmente filtradas por término de búsqueda
// sobre cédula, vendedor y método de pago.
func (uc *VentaUseCase) Listar(ctx context.Context, busqueda string, page, limit int) ([]*dto.VentaResponse, *dto.Paginacion, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	total, err := uc.ventaRepo.Contar(ctx, busqueda)
	if err != nil {
		return nil, nil, err
	}
	ventas, err := uc.ventaRepo.Listar(ctx, busqueda, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, AVentaResponse(v))
	}
	return out, dto.NuevaPaginacion(page, limit, total), nil
}

// ListarPorCedula historial completo de compras de un cliente, sin paginar.
func (uc *VentaUseCase) ListarPorCedula(ctx context.Context, cedula string) ([]*dto.VentaResponse, error) {
	if cedula == "" {
		return nil, nuevoErrVenta(domain.ErrEntradaInvalida, "La cédula del cliente es requerida")
	}
	ventas, err := uc.ventaRepo.ListarPorCedula(ctx, cedula)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, AVentaResponse(v))
	}
	return out, nil
}

// Actualizar aplica una actualización parcial. El total NO se recalcula al
// cambiar el IVA: el total pactado se toca solo si el request lo trae.
func (uc *VentaUseCase) Actualizar(ctx context.Context, actor string, id int, in dto.ActualizarVentaRequest) (*dto.VentaResponse, error) {
	v, err := uc.ventaRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNoEncontrado
	}

	if in.CedulaCliente != nil {
		v.CedulaCliente = *in.CedulaCliente
	}
	if in.IVA != nil {
		v.IVA = *in.IVA
	}
	if in.TotalPagar != nil {
		v.TotalPagar = *in.TotalPagar
	}
	if in.MetodoPago != nil {
		v.MetodoPago = *in.MetodoPago
	}
	if in.Estado != nil {
		v.Estado = *in.Estado
	}

	ok, err := uc.ventaRepo.Actualizar(ctx, v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNoEncontrado
	}

	uc.bitacora.Registrar(ctx, actor, entity.AccionActualizar, "venta", strconv.Itoa(id),
		"actualizó la venta "+strconv.Itoa(id))
	return AVentaResponse(v), nil
}

// Eliminar borra la venta de forma definitiva. El stock descontado al venderla
// no se repone.
func (uc *VentaUseCase) Eliminar(ctx context.Context, actor string, id int) error {
	ok, err := uc.ventaRepo.Eliminar(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionEliminar, "venta", strconv.Itoa(id),
		"eliminó la venta "+strconv.Itoa(id))
	return nil
}

// Estadisticas agregados de ventas activas. El promedio es total/cantidad
// redondeado a 2 decimales, 0 cuando no hay ventas.
func (uc *VentaUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error) {
	st, err := uc.ventaRepo.Estadisticas(ctx)
	if err != nil {
		return nil, err
	}
	promedio := decimal.Zero
	if st.CantidadVentas > 0 {
		promedio = st.TotalVentas.Div(decimal.NewFromInt(st.CantidadVentas)).Round(2)
	}
	return &dto.EstadisticasResponse{
		TotalVentas:    st.TotalVentas,
		CantidadVentas: st.CantidadVentas,
		VentasHoy:      st.VentasHoy,
		VentasMes:      st.VentasMes,
		PromedioVenta:  promedio,
	}, nil
}
