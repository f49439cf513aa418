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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL (usable con pool o tx).
// Las lecturas normales no seleccionan la columna contrasena; solo
// ObtenerCredenciales la trae, para la verificación del login.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const columnasUsuario = `id, usuario, nombre, apellido, cedula, email, telefono, perfil, permisos, estado, fecha_creacion`

// Crear persiste un nuevo usuario (con su hash de contraseña).
func (r *UsuarioRepo) Crear(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, usuario, contrasena, nombre, apellido, cedula, email, telefono, perfil, permisos, estado, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Usuario, u.Contrasena, u.Nombre, u.Apellido, u.Cedula, u.Email, u.Telefono,
		u.Perfil, u.Permisos.Lista(), u.Estado, u.FechaCreacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// ObtenerPorID obtiene un usuario por ID, sin el hash.
func (r *UsuarioRepo) ObtenerPorID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE id = $1`
	return r.escanearUno(r.q.QueryRow(ctx, query, id), "get usuario")
}

// ObtenerPorUsuario obtiene un usuario por nombre de usuario, sin el hash.
func (r *UsuarioRepo) ObtenerPorUsuario(ctx context.Context, usuario string) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE usuario = $1`
	return r.escanearUno(r.q.QueryRow(ctx, query, usuario), "get usuario por nombre")
}

func (r *UsuarioRepo) escanearUno(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	var permisos []string
	err := row.Scan(&u.ID, &u.Usuario, &u.Nombre, &u.Apellido, &u.Cedula, &u.Email, &u.Telefono,
		&u.Perfil, &permisos, &u.Estado, &u.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Permisos = entity.NuevoConjuntoPermisos(permisos)
	return &u, nil
}

// ObtenerCredenciales es la única lectura que recupera el hash bcrypt (login).
func (r *UsuarioRepo) ObtenerCredenciales(ctx context.Context, usuario string) (*entity.Usuario, error) {
	query := `
		SELECT id, usuario, contrasena, nombre, apellido, cedula, email, telefono, perfil, permisos, estado, fecha_creacion
		FROM usuarios WHERE usuario = $1`
	var u entity.Usuario
	var permisos []string
	err := r.q.QueryRow(ctx, query, usuario).Scan(
		&u.ID, &u.Usuario, &u.Contrasena, &u.Nombre, &u.Apellido, &u.Cedula, &u.Email, &u.Telefono,
		&u.Perfil, &permisos, &u.Estado, &u.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credenciales: %w", err)
	}
	u.Permisos = entity.NuevoConjuntoPermisos(permisos)
	return &u, nil
}

// ExisteDuplicado verifica si usuario, email o cédula ya están registrados.
func (r *UsuarioRepo) ExisteDuplicado(ctx context.Context, usuario, email, cedula string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE usuario = $1 OR email = $2 OR cedula = $3)`,
		usuario, email, cedula,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("check duplicado usuario: %w", err)
	}
	return existe, nil
}

// Listar lista usuarios (sin hash) con búsqueda opcional.
func (r *UsuarioRepo) Listar(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT ` + columnasUsuario + `
		FROM usuarios
		WHERE usuario ILIKE $1 OR nombre ILIKE $1 OR apellido ILIKE $1 OR email ILIKE $1
		ORDER BY fecha_creacion DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, patronBusqueda(busqueda), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		var permisos []string
		if err := rows.Scan(&u.ID, &u.Usuario, &u.Nombre, &u.Apellido, &u.Cedula, &u.Email, &u.Telefono,
			&u.Perfil, &permisos, &u.Estado, &u.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		u.Permisos = entity.NuevoConjuntoPermisos(permisos)
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Contar cuenta usuarios que coinciden con la búsqueda.
func (r *UsuarioRepo) Contar(ctx context.Context, busqueda string) (int, error) {
	query := `SELECT COUNT(*) FROM usuarios WHERE usuario ILIKE $1 OR nombre ILIKE $1 OR apellido ILIKE $1 OR email ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, query, patronBusqueda(busqueda)).Scan(&total); err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return total, nil
}

// Actualizar actualiza los datos del usuario. La contraseña solo se reescribe
// si u.Contrasena viene con un hash nuevo.
func (r *UsuarioRepo) Actualizar(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET usuario = $2, nombre = $3, apellido = $4, cedula = $5, email = $6, telefono = $7,
		    perfil = $8, permisos = $9, estado = $10,
		    contrasena = CASE WHEN $11 <> '' THEN $11 ELSE contrasena END
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Usuario, u.Nombre, u.Apellido, u.Cedula, u.Email, u.Telefono,
		u.Perfil, u.Permisos.Lista(), u.Estado, u.Contrasena,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// CambiarEstado activa o inactiva el usuario; devuelve false si no existe.
func (r *UsuarioRepo) CambiarEstado(ctx context.Context, id, estado string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE usuarios SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return false, fmt.Errorf("cambiar estado usuario: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
