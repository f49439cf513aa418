package repository

import (
	"context"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para clientes.
type ClienteRepository interface {
	Crear(ctx context.Context, c *entity.Cliente) error
	ObtenerPorID(ctx context.Context, id int) (*entity.Cliente, error)
	ObtenerPorCedula(ctx context.Context, cedula string) (*entity.Cliente, error)
	Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Cliente, error)
	Contar(ctx context.Context, busqueda string) (int, error)
	Actualizar(ctx context.Context, c *entity.Cliente) error
	CambiarEstado(ctx context.Context, id int, estado string) (bool, error)
}
