package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
)

var _ repository.ServicioRepository = (*ServicioRepo)(nil)

// ServicioRepo implementación de ServicioRepository sobre PostgreSQL (usable con pool o tx).
type ServicioRepo struct {
	q Querier
}

// NewServicioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServicioRepository(q Querier) *ServicioRepo {
	return &ServicioRepo{q: q}
}

// Crear persiste un nuevo servicio y deja el ID generado en s.ID.
func (r *ServicioRepo) Crear(ctx context.Context, s *entity.Servicio) error {
	query := `
		INSERT INTO servicios (nombre, costo, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, s.Nombre, s.Costo, s.Estado, s.FechaCreacion).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert servicio: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un servicio por ID.
func (r *ServicioRepo) ObtenerPorID(ctx context.Context, id int) (*entity.Servicio, error) {
	query := `SELECT id, nombre, costo, estado, fecha_creacion FROM servicios WHERE id = $1`
	var s entity.Servicio
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Nombre, &s.Costo, &s.Estado, &s.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio: %w", err)
	}
	return &s, nil
}

// Listar lista servicios con búsqueda opcional sobre el nombre.
func (r *ServicioRepo) Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Servicio, error) {
	query := `
		SELECT id, nombre, costo, estado, fecha_creacion
		FROM servicios
		WHERE nombre ILIKE $1
		ORDER BY fecha_creacion DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, patronBusqueda(busqueda), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list servicios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Servicio
	for rows.Next() {
		var s entity.Servicio
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Costo, &s.Estado, &s.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan servicio: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Contar cuenta servicios que coinciden con la búsqueda.
func (r *ServicioRepo) Contar(ctx context.Context, busqueda string) (int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM servicios WHERE nombre ILIKE $1`, patronBusqueda(busqueda)).Scan(&total); err != nil {
		return 0, fmt.Errorf("count servicios: %w", err)
	}
	return total, nil
}

// Actualizar actualiza un servicio.
func (r *ServicioRepo) Actualizar(ctx context.Context, s *entity.Servicio) error {
	query := `UPDATE servicios SET nombre = $2, costo = $3, estado = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.Nombre, s.Costo, s.Estado)
	if err != nil {
		return fmt.Errorf("update servicio: %w", err)
	}
	return nil
}

// CambiarEstado activa o inactiva el servicio; devuelve false si no existe.
func (r *ServicioRepo) CambiarEstado(ctx context.Context, id int, estado string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE servicios SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return false, fmt.Errorf("cambiar estado servicio: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
