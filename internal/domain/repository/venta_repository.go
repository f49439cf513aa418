package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

// EstadisticasVenta agregados de ventas en estado "activo".
type EstadisticasVenta struct {
	TotalVentas    decimal.Decimal
	CantidadVentas int64
	VentasHoy      int64
	VentasMes      int64
}

// VentaRepository puerto de persistencia para ventas.
type VentaRepository interface {
	// Crear inserta la venta y deja el ID generado en v.ID.
	Crear(ctx context.Context, v *entity.Venta) error
	ObtenerPorID(ctx context.Context, id int) (*entity.Venta, error)
	Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Venta, error)
	Contar(ctx context.Context, busqueda string) (int, error)
	ListarPorCedula(ctx context.Context, cedula string) ([]*entity.Venta, error)
	Actualizar(ctx context.Context, v *entity.Venta) (bool, error)
	// Eliminar borra físicamente la fila; devuelve false si no existía.
	Eliminar(ctx context.Context, id int) (bool, error)
	Estadisticas(ctx context.Context) (*EstadisticasVenta, error)
}
