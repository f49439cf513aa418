package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es la superficie mínima de ejecución de SQL que necesitan los
// repositorios. La implementan *pgxpool.Pool, pgx.Tx y pgxmock, por lo que un
// mismo repositorio sirve para operaciones sueltas, transacciones y tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
