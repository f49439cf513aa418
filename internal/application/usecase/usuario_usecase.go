package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastellano/gestion-api/internal/application/auditoria"
	"github.com/jcastellano/gestion-api/internal/application/auth"
	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso CRUD para usuarios/perfiles.
type UsuarioUseCase struct {
	repo     repository.UsuarioRepository
	bitacora *auditoria.Registrador
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository, bitacora *auditoria.Registrador) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, bitacora: bitacora}
}

// Crear crea un usuario: valida unicidad de usuario/email/cédula, hashea la
// contraseña con bcrypt y persiste.
func (uc *UsuarioUseCase) Crear(ctx context.Context, actor string, in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Usuario == "" || in.Contrasena == "" || in.Nombre == "" || in.Cedula == "" || in.Email == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existe, err := uc.repo.ExisteDuplicado(ctx, in.Usuario, in.Email, in.Cedula)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrDuplicado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	perfil := in.Perfil
	if perfil == "" {
		perfil = "Vendedor"
	}
	u := &entity.Usuario{
		ID:            uuid.New().String(),
		Usuario:       in.Usuario,
		Contrasena:    string(hash),
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		Cedula:        in.Cedula,
		Email:         in.Email,
		Telefono:      in.Telefono,
		Perfil:        perfil,
		Permisos:      entity.NuevoConjuntoPermisos(in.Permisos),
		Estado:        entity.EstadoActivo,
		FechaCreacion: time.Now(),
	}
	if err := uc.repo.Crear(ctx, u); err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionAgregar, "usuario", u.ID,
		fmt.Sprintf("agregó el usuario %s con perfil %s", u.Usuario, u.Perfil))
	return auth.AUsuarioResponse(u), nil
}

// ObtenerPorID devuelve el usuario o ErrNoEncontrado. Sin contraseña.
func (uc *UsuarioUseCase) ObtenerPorID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNoEncontrado
	}
	return auth.AUsuarioResponse(u), nil
}

// Listar lista usuarios paginados con búsqueda opcional.
func (uc *UsuarioUseCase) Listar(ctx context.Context, busqueda string, page, limit int) ([]*dto.UsuarioResponse, *dto.Paginacion, error) {
	offset := (page - 1) * limit
	usuarios, err := uc.repo.Listar(ctx, busqueda, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.repo.Contar(ctx, busqueda)
	if err != nil {
		return nil, nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, auth.AUsuarioResponse(u))
	}
	return out, dto.NuevaPaginacion(page, limit, total), nil
}

// Actualizar aplica una actualización parcial. Una contraseña no vacía se
// re-hashea; los permisos solo se reemplazan si la lista viene en el body.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, actor, id string, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNoEncontrado
	}
	if in.Usuario != nil {
		u.Usuario = *in.Usuario
	}
	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		u.Apellido = *in.Apellido
	}
	if in.Cedula != nil {
		u.Cedula = *in.Cedula
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Telefono != nil {
		u.Telefono = *in.Telefono
	}
	if in.Perfil != nil {
		u.Perfil = *in.Perfil
	}
	if in.Permisos != nil {
		u.Permisos = entity.NuevoConjuntoPermisos(in.Permisos)
	}
	u.Contrasena = ""
	if in.Contrasena != nil && *in.Contrasena != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Contrasena = string(hash)
	}
	if err := uc.repo.Actualizar(ctx, u); err != nil {
		return nil, err
	}
	uc.bitacora.Registrar(ctx, actor, entity.AccionActualizar, "usuario", u.ID,
		fmt.Sprintf("actualizó el usuario %s", u.Usuario))
	u.Contrasena = ""
	return auth.AUsuarioResponse(u), nil
}

// CambiarEstado activa o inactiva el usuario. Un usuario no puede cambiarse el
// estado a sí mismo (actorID es el ID del usuario autenticado).
func (uc *UsuarioUseCase) CambiarEstado(ctx context.Context, actor, actorID, id, estado string) error {
	if estado != entity.EstadoActivo && estado != entity.EstadoInactivo {
		return domain.ErrEntradaInvalida
	}
	if actorID == id {
		return domain.ErrProhibido
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
	uc.bitacora.Registrar(ctx, actor, accion, "usuario", id,
		fmt.Sprintf("cambió el estado del usuario a %s", estado))
	return nil
}
