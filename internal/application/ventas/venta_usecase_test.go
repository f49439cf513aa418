package ventas_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellano/gestion-api/internal/application/auditoria"
	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/application/ventas"
	"github.com/jcastellano/gestion-api/internal/domain"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
	"github.com/jcastellano/gestion-api/pkg/logger"
)

type fakeVentaQueryRepo struct {
	repository.VentaRepository
	ventas map[int]*entity.Venta
	stats  *repository.EstadisticasVenta
}

func (f *fakeVentaQueryRepo) ObtenerPorID(_ context.Context, id int) (*entity.Venta, error) {
	return f.ventas[id], nil
}

func (f *fakeVentaQueryRepo) Actualizar(_ context.Context, v *entity.Venta) (bool, error) {
	_, ok := f.ventas[v.ID]
	if ok {
		f.ventas[v.ID] = v
	}
	return ok, nil
}

func (f *fakeVentaQueryRepo) Eliminar(_ context.Context, id int) (bool, error) {
	_, ok := f.ventas[id]
	delete(f.ventas, id)
	return ok, nil
}

func (f *fakeVentaQueryRepo) Estadisticas(_ context.Context) (*repository.EstadisticasVenta, error) {
	return f.stats, nil
}

func nuevoVentaUC(repo repository.VentaRepository) (*ventas.VentaUseCase, *fakeCambioRepo) {
	cambios := &fakeCambioRepo{}
	bitacora := auditoria.NewRegistrador(cambios, logger.New(logger.Config{Env: "development", Level: "error"}))
	return ventas.NewVentaUseCase(repo, bitacora), cambios
}

func ventaGuardada() *entity.Venta {
	return &entity.Venta{
		ID:            7,
		CedulaCliente: "123456",
		Productos:     []entity.LineaVenta{{ID: 10, Cantidad: 2, Costo: decimal.NewFromInt(50)}},
		Servicios:     []entity.LineaVenta{},
		IVA:           decimal.NewFromInt(16),
		TotalPagar:    decimal.RequireFromString("116.00"),
		MetodoPago:    "efectivo",
		Vendedor:      "Juan Pérez",
		Estado:        entity.EstadoActivo,
		FechaVenta:    time.Now(),
	}
}

func TestVentaObtener_NoExiste(t *testing.T) {
	uc, _ := nuevoVentaUC(&fakeVentaQueryRepo{ventas: map[int]*entity.Venta{}})

	_, err := uc.Obtener(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

// El total pactado no se recalcula al cambiar el IVA: solo cambia si el
// request lo trae explícito.
func TestVentaActualizar_NoRecalculaTotal(t *testing.T) {
	repo := &fakeVentaQueryRepo{ventas: map[int]*entity.Venta{7: ventaGuardada()}}
	uc, cambios := nuevoVentaUC(repo)

	nuevoIVA := decimal.NewFromInt(19)
	out, err := uc.Actualizar(context.Background(), "jperez", 7, dto.ActualizarVentaRequest{IVA: &nuevoIVA})
	require.NoError(t, err)

	assert.True(t, out.IVA.Equal(decimal.NewFromInt(19)))
	assert.True(t, out.TotalPagar.Equal(decimal.RequireFromString("116.00")),
		"el total no debe recalcularse al cambiar el IVA")
	require.Len(t, cambios.cambios, 1)
	assert.Equal(t, entity.AccionActualizar, cambios.cambios[0].Accion)
}

func TestVentaActualizar_TotalExplicito(t *testing.T) {
	repo := &fakeVentaQueryRepo{ventas: map[int]*entity.Venta{7: ventaGuardada()}}
	uc, _ := nuevoVentaUC(repo)

	total := decimal.RequireFromString("150.00")
	out, err := uc.Actualizar(context.Background(), "jperez", 7, dto.ActualizarVentaRequest{TotalPagar: &total})
	require.NoError(t, err)
	assert.True(t, out.TotalPagar.Equal(total))
}

func TestVentaEliminar_BorradoFisico(t *testing.T) {
	repo := &fakeVentaQueryRepo{ventas: map[int]*entity.Venta{7: ventaGuardada()}}
	uc, cambios := nuevoVentaUC(repo)

	require.NoError(t, uc.Eliminar(context.Background(), "jperez", 7))
	assert.Empty(t, repo.ventas, "la fila debe desaparecer, no inactivarse")
	require.Len(t, cambios.cambios, 1)
	assert.Equal(t, entity.AccionEliminar, cambios.cambios[0].Accion)

	assert.ErrorIs(t, uc.Eliminar(context.Background(), "jperez", 7), domain.ErrNoEncontrado)
}

func TestVentaEstadisticas_PromedioRedondeado(t *testing.T) {
	repo := &fakeVentaQueryRepo{stats: &repository.EstadisticasVenta{
		TotalVentas:    decimal.RequireFromString("100.00"),
		CantidadVentas: 3,
		VentasHoy:      1,
		VentasMes:      2,
	}}
	uc, _ := nuevoVentaUC(repo)

	out, err := uc.Estadisticas(context.Background())
	require.NoError(t, err)
	// 100 / 3 = 33.333... → 33.33
	assert.True(t, out.PromedioVenta.Equal(decimal.RequireFromString("33.33")),
		"promedio esperado 33.33, obtenido %s", out.PromedioVenta)
	assert.EqualValues(t, 3, out.CantidadVentas)
}

// Sin ventas el promedio es cero, no una división por cero.
func TestVentaEstadisticas_SinVentas(t *testing.T) {
	repo := &fakeVentaQueryRepo{stats: &repository.EstadisticasVenta{
		TotalVentas: decimal.Zero,
	}}
	uc, _ := nuevoVentaUC(repo)

	out, err := uc.Estadisticas(context.Background())
	require.NoError(t, err)
	assert.True(t, out.PromedioVenta.IsZero())
}
