package ventas

import (
	"context"

	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción, con repositorios de
// ventas y productos atados a ella. El insert de la venta y los descuentos de
// stock de sus líneas comparten transacción: cualquier fallo revierte todo.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
