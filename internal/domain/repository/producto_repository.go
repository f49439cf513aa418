package repository

import (
	"context"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// ProductoRepository puerto de persistencia para productos, incluidas las
// mutaciones de stock.
type ProductoRepository interface {
	Crear(ctx context.Context, p *entity.Producto) error
	ObtenerPorID(ctx context.Context, id int) (*entity.Producto, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*entity.Producto, error)
	Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Producto, error)
	Contar(ctx context.Context, busqueda string) (int, error)
	Actualizar(ctx context.Context, p *entity.Producto) error
	CambiarEstado(ctx context.Context, id int, estado string) (bool, error)

	// DescontarStock resta cantidad en una sola sentencia condicionada a que
	// haya existencias suficientes; devuelve false si no las hay (cero filas).
	DescontarStock(ctx context.Context, id, cantidad int) (bool, error)
	// FijarStock sobreescribe la cantidad sin piso ni techo.
	FijarStock(ctx context.Context, id, cantidad int) (bool, error)
	// AgregarStock suma delta y devuelve la cantidad resultante.
	AgregarStock(ctx context.Context, id, delta int) (int, error)
}
