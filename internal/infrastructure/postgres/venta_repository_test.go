package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

func TestVentaRepo_Crear_AsignaID(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewVentaRepository(mock)

	v := &entity.Venta{
		CedulaCliente: "123456",
		Productos:     []entity.LineaVenta{{ID: 10, Cantidad: 2, Costo: decimal.NewFromInt(50)}},
		IVA:           decimal.NewFromInt(16),
		TotalPagar:    decimal.RequireFromString("116.00"),
		MetodoPago:    "efectivo",
		Vendedor:      "Juan Pérez",
		Estado:        entity.EstadoActivo,
		FechaVenta:    time.Now(),
	}

	mock.ExpectQuery(`INSERT INTO ventas`).
		WithArgs(v.CedulaCliente, entity.CodificarLineas(v.Productos), entity.CodificarLineas(nil),
			v.IVA, v.TotalPagar, v.MetodoPago, v.Vendedor, v.Estado, v.FechaVenta).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	require.NoError(t, r.Crear(context.Background(), v))
	require.Equal(t, 7, v.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVentaRepo_ObtenerPorID_NoExiste_DevuelveNil(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewVentaRepository(mock)

	mock.ExpectQuery(`SELECT id, cedula_cliente, productos, servicios, iva, total_pagar, metodo_pago, vendedor, estado, fecha_venta FROM ventas WHERE id = \$1`).
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	v, err := r.ObtenerPorID(context.Background(), 99)
	require.NoError(t, err)
	require.Nil(t, v)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Filas antiguas pueden traer las líneas doblemente serializadas; el escaneo
// debe decodificarlas igual.
func TestVentaRepo_ObtenerPorID_LineasDobleCodificadas(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewVentaRepository(mock)

	doble := []byte(`"[{\"id\":10,\"cantidad\":2,\"costo\":\"50\"}]"`)
	ahora := time.Now()

	mock.ExpectQuery(`SELECT id, cedula_cliente, productos, servicios, iva, total_pagar, metodo_pago, vendedor, estado, fecha_venta FROM ventas WHERE id = \$1`).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "cedula_cliente", "productos", "servicios", "iva",
			"total_pagar", "metodo_pago", "vendedor", "estado", "fecha_venta",
		}).AddRow(7, "123456", doble, []byte(`[]`), decimal.NewFromInt(16),
			decimal.RequireFromString("116.00"), "efectivo", "Juan Pérez", "activo", ahora))

	v, err := r.ObtenerPorID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Len(t, v.Productos, 1)
	require.Equal(t, 10, v.Productos[0].ID)
	require.Equal(t, 2, v.Productos[0].Cantidad)
	require.Empty(t, v.Servicios)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVentaRepo_Eliminar(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewVentaRepository(mock)

	mock.ExpectExec(`DELETE FROM ventas WHERE id = \$1`).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	ok, err := r.Eliminar(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, ok)

	mock.ExpectExec(`DELETE FROM ventas WHERE id = \$1`).
		WithArgs(8).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	ok, err = r.Eliminar(context.Background(), 8)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVentaRepo_Estadisticas(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewVentaRepository(mock)

	mock.ExpectQuery(`SELECT\s+COALESCE\(SUM\(total_pagar\), 0\)`).
		WillReturnRows(pgxmock.NewRows([]string{
			"total_ventas", "cantidad_ventas", "ventas_hoy", "ventas_mes",
		}).AddRow(decimal.RequireFromString("1500.50"), int64(12), int64(3), int64(9)))

	st, err := r.Estadisticas(context.Background())
	require.NoError(t, err)
	require.True(t, st.TotalVentas.Equal(decimal.RequireFromString("1500.50")))
	require.EqualValues(t, 12, st.CantidadVentas)
	require.EqualValues(t, 3, st.VentasHoy)
	require.EqualValues(t, 9, st.VentasMes)
	require.NoError(t, mock.ExpectationsWereMet())
}
