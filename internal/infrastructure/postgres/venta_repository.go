package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas de productos y servicios se guardan como JSONB dentro de la fila;
// el escaneo las decodifica de forma tolerante (filas antiguas pueden contener
// texto doblemente serializado).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const columnasVenta = `id, cedula_cliente, productos, servicios, iva, total_pagar, metodo_pago, vendedor, estado, fecha_venta`

// Crear inserta la venta y deja el ID generado en v.ID.
func (r *VentaRepo) Crear(ctx context.Context, v *entity.Venta) error {
	query := `
		INSERT INTO ventas (cedula_cliente, productos, servicios, iva, total_pagar, metodo_pago, vendedor, estado, fecha_venta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		v.CedulaCliente, entity.CodificarLineas(v.Productos), entity.CodificarLineas(v.Servicios),
		v.IVA, v.TotalPagar, v.MetodoPago, v.Vendedor, v.Estado, v.FechaVenta,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene una venta por ID.
func (r *VentaRepo) ObtenerPorID(ctx context.Context, id int) (*entity.Venta, error) {
	query := `SELECT ` + columnasVenta + ` FROM ventas WHERE id = $1`
	v, err := escanearVenta(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

func escanearVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	var rawProductos, rawServicios []byte
	err := row.Scan(&v.ID, &v.CedulaCliente, &rawProductos, &rawServicios,
		&v.IVA, &v.TotalPagar, &v.MetodoPago, &v.Vendedor, &v.Estado, &v.FechaVenta)
	if err != nil {
		return nil, err
	}
	v.Productos = entity.DecodificarLineas(rawProductos)
	v.Servicios = entity.DecodificarLineas(rawServicios)
	return &v, nil
}

// Listar lista ventas con búsqueda opcional sobre cédula del cliente y vendedor.
func (r *VentaRepo) Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Venta, error) {
	query := `
		SELECT ` + columnasVenta + `
		FROM ventas
		WHERE cedula_cliente ILIKE $1 OR vendedor ILIKE $1
		ORDER BY fecha_venta DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, patronBusqueda(busqueda), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	return recolectarVentas(rows)
}

func recolectarVentas(rows pgx.Rows) ([]*entity.Venta, error) {
	var list []*entity.Venta
	for rows.Next() {
		v, err := escanearVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Contar cuenta ventas que coinciden con la búsqueda.
func (r *VentaRepo) Contar(ctx context.Context, busqueda string) (int, error) {
	query := `SELECT COUNT(*) FROM ventas WHERE cedula_cliente ILIKE $1 OR vendedor ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, query, patronBusqueda(busqueda)).Scan(&total); err != nil {
		return 0, fmt.Errorf("count ventas: %w", err)
	}
	return total, nil
}

// ListarPorCedula lista las ventas de un cliente por su cédula.
func (r *VentaRepo) ListarPorCedula(ctx context.Context, cedula string) ([]*entity.Venta, error) {
	query := `SELECT ` + columnasVenta + ` FROM ventas WHERE cedula_cliente = $1 ORDER BY fecha_venta DESC`
	rows, err := r.q.Query(ctx, query, cedula)
	if err != nil {
		return nil, fmt.Errorf("list ventas por cedula: %w", err)
	}
	defer rows.Close()
	return recolectarVentas(rows)
}

// Actualizar reescribe la fila completa (el total NO se recalcula aquí);
// devuelve false si la venta no existe.
func (r *VentaRepo) Actualizar(ctx context.Context, v *entity.Venta) (bool, error) {
	query := `
		UPDATE ventas
		SET cedula_cliente = $2, productos = $3, servicios = $4, iva = $5, total_pagar = $6,
		    metodo_pago = $7, vendedor = $8, estado = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		v.ID, v.CedulaCliente, entity.CodificarLineas(v.Productos), entity.CodificarLineas(v.Servicios),
		v.IVA, v.TotalPagar, v.MetodoPago, v.Vendedor, v.Estado,
	)
	if err != nil {
		return false, fmt.Errorf("update venta: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Eliminar borra físicamente la venta; devuelve false si no existía.
func (r *VentaRepo) Eliminar(ctx context.Context, id int) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete venta: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Estadisticas agrega las ventas en estado "activo" en una sola consulta:
// ingreso total, cantidad, ventas del día y del mes calendario actual.
func (r *VentaRepo) Estadisticas(ctx context.Context) (*repository.EstadisticasVenta, error) {
	const query = `
	SELECT
	    COALESCE(SUM(total_pagar), 0)                                                          AS total_ventas,
	    COUNT(*)                                                                               AS cantidad_ventas,
	    COUNT(*) FILTER (WHERE fecha_venta::date = CURRENT_DATE)                               AS ventas_hoy,
	    COUNT(*) FILTER (WHERE date_trunc('month', fecha_venta) = date_trunc('month', now()))  AS ventas_mes
	FROM ventas
	WHERE estado = 'activo'`

	var e repository.EstadisticasVenta
	err := r.q.QueryRow(ctx, query).Scan(&e.TotalVentas, &e.CantidadVentas, &e.VentasHoy, &e.VentasMes)
	if err != nil {
		return nil, fmt.Errorf("estadisticas ventas: %w", err)
	}
	return &e, nil
}
