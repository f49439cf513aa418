package repository

import (
	"context"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// ServicioRepository puerto de persistencia para servicios.
type ServicioRepository interface {
	Crear(ctx context.Context, s *entity.Servicio) error
	ObtenerPorID(ctx context.Context, id int) (*entity.Servicio, error)
	Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Servicio, error)
	Contar(ctx context.Context, busqueda string) (int, error)
	Actualizar(ctx context.Context, s *entity.Servicio) error
	CambiarEstado(ctx context.Context, id int, estado string) (bool, error)
}
