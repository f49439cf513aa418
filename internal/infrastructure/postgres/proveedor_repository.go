package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Crear persiste un nuevo proveedor y deja el ID generado en p.ID.
func (r *ProveedorRepo) Crear(ctx context.Context, p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (nombre, telefono, email, direccion, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, p.Nombre, p.Telefono, p.Email, p.Direccion, p.Estado, p.FechaCreacion).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un proveedor por ID.
func (r *ProveedorRepo) ObtenerPorID(ctx context.Context, id int) (*entity.Proveedor, error) {
	query := `SELECT id, nombre, telefono, email, direccion, estado, fecha_creacion FROM proveedores WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Nombre, &p.Telefono, &p.Email, &p.Direccion, &p.Estado, &p.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// Listar lista proveedores con búsqueda opcional sobre nombre y email.
func (r *ProveedorRepo) Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Proveedor, error) {
	query := `
		SELECT id, nombre, telefono, email, direccion, estado, fecha_creacion
		FROM proveedores
		WHERE nombre ILIKE $1 OR email ILIKE $1
		ORDER BY fecha_creacion DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, patronBusqueda(busqueda), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Telefono, &p.Email, &p.Direccion, &p.Estado, &p.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Contar cuenta proveedores que coinciden con la búsqueda.
func (r *ProveedorRepo) Contar(ctx context.Context, busqueda string) (int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM proveedores WHERE nombre ILIKE $1 OR email ILIKE $1`, patronBusqueda(busqueda)).Scan(&total); err != nil {
		return 0, fmt.Errorf("count proveedores: %w", err)
	}
	return total, nil
}

// Actualizar actualiza un proveedor.
func (r *ProveedorRepo) Actualizar(ctx context.Context, p *entity.Proveedor) error {
	query := `UPDATE proveedores SET nombre = $2, telefono = $3, email = $4, direccion = $5, estado = $6 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Nombre, p.Telefono, p.Email, p.Direccion, p.Estado)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// CambiarEstado activa o inactiva el proveedor; devuelve false si no existe.
func (r *ProveedorRepo) CambiarEstado(ctx context.Context, id int, estado string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE proveedores SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return false, fmt.Errorf("cambiar estado proveedor: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
