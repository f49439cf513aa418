package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jcastellano/gestion-api/internal/application/auditoria"
	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos más las operaciones de stock.
type ProductoUseCase struct {
	repo     repository.ProductoRepository
	bitacora *auditoria.Registrador
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, bitacora *auditoria.Registrador) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, bitacora: bitacora}
}

// Crear crea un producto. El nombre es único.
func (uc *ProductoUseCase) Crear(ctx context.Context, actor string, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.CantidadProducto < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	existente, _ := uc.repo.ObtenerPorNombre(ctx, in.Nombre)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	p := &entity.Producto{
		Nombre:           in.Nombre,
		CantidadProducto: in.CantidadProducto,
		PrecioVenta:      in.PrecioVenta,
		PrecioCompra:     in.PrecioCompra,
		Marca:            in.Marca,
		ProveedorID:      in.ProveedorID,
		Categoria:        in.Categoria,
		Estado:           entity.EstadoActivo,
		FechaCreacion:    time.Now(),
	}
	if err := uc.repo.Crear(ctx, p); err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionAgregar, "producto", strconv.Itoa(p.ID),
		fmt.Sprintf("agregó el producto %s con %d unidades", p.Nombre, p.CantidadProducto))
	return aProductoResponse(p), nil
}

// ObtenerPorID devuelve el producto o ErrNoEncontrado.
func (uc *ProductoUseCase) ObtenerPorID(ctx context.Context, id int) (*dto.ProductoResponse, error) {
	p, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	return aProductoResponse(p), nil
}

// Listar lista productos paginados con búsqueda opcional.
func (uc *ProductoUseCase) Listar(ctx context.Context, busqueda string, page, limit int) ([]*dto.ProductoResponse, *dto.Paginacion, error) {
	offset := (page - 1) * limit
	productos, err := uc.repo.Listar(ctx, busqueda, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.repo.Contar(ctx, busqueda)
	if err != nil {
		return nil, nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, aProductoResponse(p))
	}
	return out, dto.NuevaPaginacion(page, limit, total), nil
}

// Actualizar aplica una actualización parcial. El stock no se toca por aquí.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, actor string, id int, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Nombre != nil && *in.Nombre != p.Nombre {
		existente, _ := uc.repo.ObtenerPorNombre(ctx, *in.Nombre)
		if existente != nil {
			return nil, domain.ErrDuplicado
		}
		p.Nombre = *in.Nombre
	}
	if in.PrecioVenta != nil {
		p.PrecioVenta = *in.PrecioVenta
	}
	if in.PrecioCompra != nil {
		p.PrecioCompra = *in.PrecioCompra
	}
	if in.Marca != nil {
		p.Marca = *in.Marca
	}
	if in.ProveedorID != nil {
		p.ProveedorID = *in.ProveedorID
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if err := uc.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionActualizar, "producto", strconv.Itoa(p.ID),
		fmt.Sprintf("actualizó el producto %s", p.Nombre))
	return aProductoResponse(p), nil
}

// CambiarEstado activa o inactiva el producto (baja lógica).
func (uc *ProductoUseCase) CambiarEstado(ctx context.Context, actor string, id int, estado string) error {
	if estado != entity.EstadoActivo && estado != entity.EstadoInactivo {
		return domain.ErrEntradaInvalida
	}
	ok, err := uc.repo.CambiarEstado(ctx, id, estado)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNoEncontrado
	}
	accion := entity.AccionActivo
	if estado == entity.EstadoInactivo {
		accion = entity.AccionInactivo
	}
	uc.bitacora.Registrar(ctx, actor, accion, "producto", strconv.Itoa(id),
		fmt.Sprintf("cambió el estado del producto a %s", estado))
	return nil
}

// VerificarStock devuelve, por cada producto resoluble, sus existencias y si
// alcanzan para la cantidad pedida. Los IDs que no resuelven se omiten de la
// lista en silencio.
func (uc *ProductoUseCase) VerificarStock(ctx context.Context, items []dto.ItemStockRequest) ([]dto.DisponibilidadStock, error) {
	out := make([]dto.DisponibilidadStock, 0, len(items))
	for _, item := range items {
		p, err := uc.repo.ObtenerPorID(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		out = append(out, dto.DisponibilidadStock{
			ID:                 p.ID,
			CantidadDisponible: p.CantidadProducto,
			Suficiente:         p.CantidadProducto >= item.Cantidad,
		})
	}
	return out, nil
}

// FijarStock sobreescribe la cantidad sin validación de rango; acepta
// negativos.
func (uc *ProductoUseCase) FijarStock(ctx context.Context, actor string, id, cantidad int) (*dto.StockResponse, error) {
	ok, err := uc.repo.FijarStock(ctx, id, cantidad)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionActualizar, "producto", strconv.Itoa(id),
		fmt.Sprintf("fijó el stock del producto en %d unidades", cantidad))
	return &dto.StockResponse{ID: id, CantidadProducto: cantidad}, nil
}

// AgregarStock suma un delta estrictamente positivo a las existencias.
func (uc *ProductoUseCase) AgregarStock(ctx context.Context, actor string, id, delta int) (*dto.StockResponse, error) {
	if delta <= 0 {
		return nil, domain.ErrEntradaInvalida
	}
	nueva, err := uc.repo.AgregarStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionActualizar, "producto", strconv.Itoa(id),
		fmt.Sprintf("agregó %d unidades al stock del producto", delta))
	return &dto.StockResponse{ID: id, CantidadProducto: nueva}, nil
}

func aProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:               p.ID,
		Nombre:           p.Nombre,
		CantidadProducto: p.CantidadProducto,
		PrecioVenta:      p.PrecioVenta,
		PrecioCompra:     p.PrecioCompra,
		Marca:            p.Marca,
		ProveedorID:      p.ProveedorID,
		Categoria:        p.Categoria,
		Estado:           p.Estado,
		FechaCreacion:    p.FechaCreacion,
	}
}
