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

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo     repository.ClienteRepository
	bitacora *auditoria.Registrador
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, bitacora *auditoria.Registrador) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, bitacora: bitacora}
}

// Crear crea un cliente. La cédula es única: se pre-verifica antes de insertar
// y además la respalda el constraint de la tabla.
func (uc *ClienteUseCase) Crear(ctx context.Context, actor string, in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if in.Cedula == "" || in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, _ := uc.repo.ObtenerPorCedula(ctx, in.Cedula)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	c := &entity.Cliente{
		Cedula:        in.Cedula,
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		Telefono:      in.Telefono,
		Email:         in.Email,
		Direccion:     in.Direccion,
		Estado:        entity.EstadoActivo,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Crear(ctx, c); err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionAgregar, "cliente", strconv.Itoa(c.ID),
		fmt.Sprintf("agregó el cliente %s %s (cédula %s)", c.Nombre, c.Apellido, c.Cedula))
	return aClienteResponse(c), nil
}

// ObtenerPorID devuelve el cliente o ErrNoEncontrado.
func (uc *ClienteUseCase) ObtenerPorID(ctx context.Context, id int) (*dto.ClienteResponse, error) {
	c, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNoEncontrado
	}
	return aClienteResponse(c), nil
}

// Listar lista clientes paginados con búsqueda opcional.
func (uc *ClienteUseCase) Listar(ctx context.Context, busqueda string, page, limit int) ([]*dto.ClienteResponse, *dto.Paginacion, error) {
	offset := (page - 1) * limit
	clientes, err := uc.repo.Listar(ctx, busqueda, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.repo.Contar(ctx, busqueda)
	if err != nil {
		return nil, nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, aClienteResponse(c))
	}
	return out, dto.NuevaPaginacion(page, limit, total), nil
}

// Actualizar aplica una actualización parcial.
func (uc *ClienteUseCase) Actualizar(ctx context.Context, actor string, id int, in dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Cedula != nil && *in.Cedula != c.Cedula {
		existente, _ := uc.repo.ObtenerPorCedula(ctx, *in.Cedula)
		if existente != nil {
			return nil, domain.ErrDuplicado
		}
		c.Cedula = *in.Cedula
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		c.Apellido = *in.Apellido
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Direccion != nil {
		c.Direccion = *in.Direccion
	}
	if err := uc.repo.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionActualizar, "cliente", strconv.Itoa(c.ID),
		fmt.Sprintf("actualizó el cliente con cédula %s", c.Cedula))
	return aClienteResponse(c), nil
}

// CambiarEstado activa o inactiva el cliente (baja lógica).
func (uc *ClienteUseCase) CambiarEstado(ctx context.Context, actor string, id int, estado string) error {
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
	uc.bitacora.Registrar(ctx, actor, accion, "cliente", strconv.Itoa(id),
		fmt.Sprintf("cambió el estado del cliente a %s", estado))
	return nil
}

func aClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:            c.ID,
		Cedula:        c.Cedula,
		Nombre:        c.Nombre,
		Apellido:      c.Apellido,
		Telefono:      c.Telefono,
		Email:         c.Email,
		Direccion:     c.Direccion,
		Estado:        c.Estado,
		FechaCreacion: c.FechaCreacion,
	}
}
