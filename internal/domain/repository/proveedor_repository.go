package repository

import (
	"context"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// ProveedorRepository puerto de persistencia para proveedores.
type ProveedorRepository interface {
	Crear(ctx context.Context, p *entity.Proveedor) error
	ObtenerPorID(ctx context.Context, id int) (*entity.Proveedor, error)
	Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Proveedor, error)
	Contar(ctx context.Context, busqueda string) (int, error)
	Actualizar(ctx context.Context, p *entity.Proveedor) error
	CambiarEstado(ctx context.Context, id int, estado string) (bool, error)
}
