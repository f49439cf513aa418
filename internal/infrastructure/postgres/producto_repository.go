package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const columnasProducto = `id, nombre, cantidad_producto, precio_venta, precio_compra, marca, proveedor_id, categoria, estado, fecha_creacion`

// Crear persiste un nuevo producto y deja el ID generado en p.ID.
func (r *ProductoRepo) Crear(ctx context.Context, p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, cantidad_producto, precio_venta, precio_compra, marca, proveedor_id, categoria, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.CantidadProducto, p.PrecioVenta, p.PrecioCompra, p.Marca,
		p.ProveedorID, p.Categoria, p.Estado, p.FechaCreacion,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un producto por ID.
func (r *ProductoRepo) ObtenerPorID(ctx context.Context, id int) (*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE id = $1`
	return r.escanearUno(r.q.QueryRow(ctx, query, id), "get producto")
}

// ObtenerPorNombre obtiene un producto por nombre (único).
func (r *ProductoRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE nombre = $1`
	return r.escanearUno(r.q.QueryRow(ctx, query, nombre), "get producto por nombre")
}

func (r *ProductoRepo) escanearUno(row pgx.Row, op string) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(&p.ID, &p.Nombre, &p.CantidadProducto, &p.PrecioVenta, &p.PrecioCompra,
		&p.Marca, &p.ProveedorID, &p.Categoria, &p.Estado, &p.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// Listar lista productos con búsqueda opcional sobre nombre, marca y categoría.
func (r *ProductoRepo) Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + columnasProducto + `
		FROM productos
		WHERE nombre ILIKE $1 OR marca ILIKE $1 OR categoria ILIKE $1
		ORDER BY fecha_creacion DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, patronBusqueda(busqueda), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.CantidadProducto, &p.PrecioVenta, &p.PrecioCompra,
			&p.Marca, &p.ProveedorID, &p.Categoria, &p.Estado, &p.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Contar cuenta productos que coinciden con la búsqueda.
func (r *ProductoRepo) Contar(ctx context.Context, busqueda string) (int, error) {
	query := `SELECT COUNT(*) FROM productos WHERE nombre ILIKE $1 OR marca ILIKE $1 OR categoria ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, query, patronBusqueda(busqueda)).Scan(&total); err != nil {
		return 0, fmt.Errorf("count productos: %w", err)
	}
	return total, nil
}

// Actualizar actualiza un producto. El stock no se toca aquí: se maneja con
// DescontarStock, FijarStock y AgregarStock.
func (r *ProductoRepo) Actualizar(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, precio_venta = $3, precio_compra = $4, marca = $5, proveedor_id = $6, categoria = $7, estado = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.PrecioVenta, p.PrecioCompra, p.Marca, p.ProveedorID, p.Categoria, p.Estado,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// CambiarEstado activa o inactiva el producto; devuelve false si no existe.
func (r *ProductoRepo) CambiarEstado(ctx context.Context, id int, estado string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE productos SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return false, fmt.Errorf("cambiar estado producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DescontarStock resta cantidad en una sola sentencia condicionada: cero filas
// afectadas significa que no había existencias suficientes (o el producto no
// existe). Ejecutada dentro de la transacción de la venta evita el oversell de
// dos ventas concurrentes sobre el mismo producto.
func (r *ProductoRepo) DescontarStock(ctx context.Context, id, cantidad int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET cantidad_producto = cantidad_producto - $2 WHERE id = $1 AND cantidad_producto >= $2`,
		id, cantidad,
	)
	if err != nil {
		return false, fmt.Errorf("descontar stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// FijarStock sobreescribe la cantidad sin validación de piso ni techo.
func (r *ProductoRepo) FijarStock(ctx context.Context, id, cantidad int) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET cantidad_producto = $2 WHERE id = $1`,
		id, cantidad,
	)
	if err != nil {
		return false, fmt.Errorf("fijar stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AgregarStock suma delta y devuelve la cantidad resultante.
func (r *ProductoRepo) AgregarStock(ctx context.Context, id, delta int) (int, error) {
	var nueva int
	err := r.q.QueryRow(ctx,
		`UPDATE productos SET cantidad_producto = cantidad_producto + $2 WHERE id = $1 RETURNING cantidad_producto`,
		id, delta,
	).Scan(&nueva)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNoEncontrado
		}
		return 0, fmt.Errorf("agregar stock: %w", err)
	}
	return nueva, nil
}
