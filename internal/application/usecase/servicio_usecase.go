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

// ServicioUseCase casos de uso CRUD para servicios.
type ServicioUseCase struct {
	repo     repository.ServicioRepository
	bitacora *auditoria.Registrador
}

// NewServicioUseCase construye el caso de uso.
func NewServicioUseCase(repo repository.ServicioRepository, bitacora *auditoria.Registrador) *ServicioUseCase {
	return &ServicioUseCase{repo: repo, bitacora: bitacora}
}

// Crear crea un servicio.
func (uc *ServicioUseCase) Crear(ctx context.Context, actor string, in dto.CrearServicioRequest) (*dto.ServicioResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	s := &entity.Servicio{
		Nombre:        in.Nombre,
		Costo:         in.Costo,
		Estado:        entity.EstadoActivo,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Crear(ctx, s); err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionAgregar, "servicio", strconv.Itoa(s.ID),
		fmt.Sprintf("agregó el servicio %s", s.Nombre))
	return aServicioResponse(s), nil
}

// ObtenerPorID devuelve el servicio o ErrNoEncontrado.
func (uc *ServicioUseCase) ObtenerPorID(ctx context.Context, id int) (*dto.ServicioResponse, error) {
	s, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNoEncontrado
	}
	return aServicioResponse(s), nil
}

// Listar lista servicios paginados con búsqueda opcional.
func (uc *ServicioUseCase) Listar(ctx context.Context, busqueda string, page, limit int) ([]*dto.ServicioResponse, *dto.Paginacion, error) {
	offset := (page - 1) * limit
	servicios, err := uc.repo.Listar(ctx, busqueda, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.repo.Contar(ctx, busqueda)
	if err != nil {
		return nil, nil, err
	}
	out := make([]*dto.ServicioResponse, 0, len(servicios))
	for _, s := range servicios {
		out = append(out, aServicioResponse(s))
	}
	return out, dto.NuevaPaginacion(page, limit, total), nil
}

// Actualizar aplica una actualización parcial.
func (uc *ServicioUseCase) Actualizar(ctx context.Context, actor string, id int, in dto.ActualizarServicioRequest) (*dto.ServicioResponse, error) {
	s, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Nombre != nil {
		s.Nombre = *in.Nombre
	}
	if in.Costo != nil {
		s.Costo = *in.Costo
	}
	if err := uc.repo.Actualizar(ctx, s); err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionActualizar, "servicio", strconv.Itoa(s.ID),
		fmt.Sprintf("actualizó el servicio %s", s.Nombre))
	return aServicioResponse(s), nil
}

// CambiarEstado activa o inactiva el servicio (baja lógica).
func (uc *ServicioUseCase) CambiarEstado(ctx context.Context, actor string, id int, estado string) error {
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
	uc.bitacora.Registrar(ctx, actor, accion, "servicio", strconv.Itoa(id),
		fmt.Sprintf("cambió el estado del servicio a %s", estado))
	return nil
}

func aServicioResponse(s *entity.Servicio) *dto.ServicioResponse {
	return &dto.ServicioResponse{
		ID:            s.ID,
		Nombre:        s.Nombre,
		Costo:         s.Costo,
		Estado:        s.Estado,
		FechaCreacion: s.FechaCreacion,
	}
}
