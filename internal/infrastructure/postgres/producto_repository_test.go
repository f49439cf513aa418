package postgres

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

func TestProductoRepo_DescontarStock_Suficiente(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewProductoRepository(mock)

	mock.ExpectExec(`UPDATE productos SET cantidad_producto = cantidad_producto - \$2 WHERE id = \$1 AND cantidad_producto >= \$2`).
		WithArgs(10, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := r.DescontarStock(context.Background(), 10, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Cero filas afectadas: el producto no existe o no alcanza el stock. El
// descuento condicional es la garantía contra el oversell concurrente.
func TestProductoRepo_DescontarStock_Insuficiente(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewProductoRepository(mock)

	mock.ExpectExec(`UPDATE productos SET cantidad_producto = cantidad_producto - \$2 WHERE id = \$1 AND cantidad_producto >= \$2`).
		WithArgs(10, 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := r.DescontarStock(context.Background(), 10, 99)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

// FijarStock no valida rango: una cantidad negativa también se escribe.
func TestProductoRepo_FijarStock_AceptaNegativos(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewProductoRepository(mock)

	mock.ExpectExec(`UPDATE productos SET cantidad_producto = \$2 WHERE id = \$1`).
		WithArgs(10, -5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := r.FijarStock(context.Background(), 10, -5)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductoRepo_AgregarStock_DevuelveCantidadResultante(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewProductoRepository(mock)

	mock.ExpectQuery(`UPDATE productos SET cantidad_producto = cantidad_producto \+ \$2 WHERE id = \$1 RETURNING cantidad_producto`).
		WithArgs(10, 3).
		WillReturnRows(pgxmock.NewRows([]string{"cantidad_producto"}).AddRow(8))

	nueva, err := r.AgregarStock(context.Background(), 10, 3)
	require.NoError(t, err)
	require.Equal(t, 8, nueva)
	require.NoError(t, mock.ExpectationsWereMet())
}
