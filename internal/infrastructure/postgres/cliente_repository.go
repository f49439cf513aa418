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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const columnasCliente = `id, cedula, nombre, apellido, telefono, email, direccion, estado, fecha_creacion`

// Crear persiste un nuevo cliente y deja el ID generado en c.ID.
func (r *ClienteRepo) Crear(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (cedula, nombre, apellido, telefono, email, direccion, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Cedula, c.Nombre, c.Apellido, c.Telefono, c.Email, c.Direccion, c.Estado, c.FechaCreacion,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un cliente por ID.
func (r *ClienteRepo) ObtenerPorID(ctx context.Context, id int) (*entity.Cliente, error) {
	query := `SELECT ` + columnasCliente + ` FROM clientes WHERE id = $1`
	return r.escanearUno(r.q.QueryRow(ctx, query, id), "get cliente")
}

// ObtenerPorCedula obtiene un cliente por cédula (única).
func (r *ClienteRepo) ObtenerPorCedula(ctx context.Context, cedula string) (*entity.Cliente, error) {
	query := `SELECT ` + columnasCliente + ` FROM clientes WHERE cedula = $1`
	return r.escanearUno(r.q.QueryRow(ctx, query, cedula), "get cliente por cedula")
}

func (r *ClienteRepo) escanearUno(row pgx.Row, op string) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.Cedula, &c.Nombre, &c.Apellido, &c.Telefono, &c.Email, &c.Direccion, &c.Estado, &c.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// Listar lista clientes con búsqueda opcional sobre cédula, nombre y apellido.
func (r *ClienteRepo) Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT ` + columnasCliente + `
		FROM clientes
		WHERE cedula ILIKE $1 OR nombre ILIKE $1 OR apellido ILIKE $1
		ORDER BY fecha_creacion DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, patronBusqueda(busqueda), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Cedula, &c.Nombre, &c.Apellido, &c.Telefono, &c.Email, &c.Direccion, &c.Estado, &c.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Contar cuenta clientes que coinciden con la búsqueda (para la paginación).
func (r *ClienteRepo) Contar(ctx context.Context, busqueda string) (int, error) {
	query := `SELECT COUNT(*) FROM clientes WHERE cedula ILIKE $1 OR nombre ILIKE $1 OR apellido ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, query, patronBusqueda(busqueda)).Scan(&total); err != nil {
		return 0, fmt.Errorf("count clientes: %w", err)
	}
	return total, nil
}

// Actualizar actualiza un cliente existente.
func (r *ClienteRepo) Actualizar(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET cedula = $2, nombre = $3, apellido = $4, telefono = $5, email = $6, direccion = $7, estado = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Cedula, c.Nombre, c.Apellido, c.Telefono, c.Email, c.Direccion, c.Estado,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// CambiarEstado activa o inactiva el cliente; devuelve false si no existe.
func (r *ClienteRepo) CambiarEstado(ctx context.Context, id int, estado string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE clientes SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return false, fmt.Errorf("cambiar estado cliente: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
