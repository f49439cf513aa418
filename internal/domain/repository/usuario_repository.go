package repository

import (
	"context"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia para usuarios/perfiles.
// Las lecturas normales no recuperan el hash de contraseña; solo
// ObtenerCredenciales lo hace (login).
type UsuarioRepository interface {
	Crear(ctx context.Context, u *entity.Usuario) error
	ObtenerPorID(ctx context.Context, id string) (*entity.Usuario, error)
	ObtenerPorUsuario(ctx context.Context, usuario string) (*entity.Usuario, error)
	ObtenerCredenciales(ctx context.Context, usuario string) (*entity.Usuario, error)
	ExisteDuplicado(ctx context.Context, usuario, email, cedula string) (bool, error)
	Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Usuario, error)
	Contar(ctx context.Context, busqueda string) (int, error)
	Actualizar(ctx context.Context, u *entity.Usuario) error
	CambiarEstado(ctx context.Context, id, estado string) (bool, error)
}
