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

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo     repository.ProveedorRepository
	bitacora *auditoria.Registrador
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository, bitacora *auditoria.Registrador) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo, bitacora: bitacora}
}

// Crear crea un proveedor.
func (uc *ProveedorUseCase) Crear(ctx context.Context, actor string, in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	p := &entity.Proveedor{
		Nombre:        in.Nombre,
		Telefono:      in.Telefono,
		Email:         in.Email,
		Direccion:     in.Direccion,
		Estado:        entity.EstadoActivo,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Crear(ctx, p); err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionAgregar, "proveedor", strconv.Itoa(p.ID),
		fmt.Sprintf("agregó el proveedor %s", p.Nombre))
	return aProveedorResponse(p), nil
}

// ObtenerPorID devuelve el proveedor o ErrNoEncontrado.
func (uc *ProveedorUseCase) ObtenerPorID(ctx context.Context, id int) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	return aProveedorResponse(p), nil
}

// Listar lista proveedores paginados con búsqueda opcional.
func (uc *ProveedorUseCase) Listar(ctx context.Context, busqueda string, page, limit int) ([]*dto.ProveedorResponse, *dto.Paginacion, error) {
	offset := (page - 1) * limit
	proveedores, err := uc.repo.Listar(ctx, busqueda, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.repo.Contar(ctx, busqueda)
	if err != nil {
		return nil, nil, err
	}
	out := make([]*dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, aProveedorResponse(p))
	}
	return out, dto.NuevaPaginacion(page, limit, total), nil
}

// Actualizar aplica una actualización parcial.
func (uc *ProveedorUseCase) Actualizar(ctx context.Context, actor string, id int, in dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Telefono != nil {
		p.Telefono = *in.Telefono
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Direccion != nil {
		p.Direccion = *in.Direccion
	}
	if err := uc.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionActualizar, "proveedor", strconv.Itoa(p.ID),
		fmt.Sprintf("actualizó el proveedor %s", p.Nombre))
	return aProveedorResponse(p), nil
}

// CambiarEstado activa o inactiva el proveedor (baja lógica).
func (uc *ProveedorUseCase) CambiarEstado(ctx context.Context, actor string, id int, estado string) error {
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
	uc.bitacora.Registrar(ctx, actor, accion, "proveedor", strconv.Itoa(id),
		fmt.Sprintf("cambió el estado del proveedor a %s", estado))
	return nil
}

func aProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Telefono:      p.Telefono,
		Email:         p.Email,
		Direccion:     p.Direccion,
		Estado:        p.Estado,
		FechaCreacion: p.FechaCreacion,
	}
}
