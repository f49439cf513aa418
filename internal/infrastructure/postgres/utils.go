package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// patronBusqueda arma el patrón ILIKE para los listados con search opcional.
// Un término vacío produce "%", que no filtra nada.
func patronBusqueda(termino string) string {
	return "%" + termino + "%"
}
