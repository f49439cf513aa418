package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
)

func TestDecodificarLineas_ArregloEstructurado(t *testing.T) {
	raw := []byte(`[{"id":10,"cantidad":2,"costo":"50"},{"id":11,"cantidad":1,"costo":25.5}]`)

	lineas := entity.DecodificarLineas(raw)
	require.Len(t, lineas, 2)
	assert.Equal(t, 10, lineas[0].ID)
	assert.Equal(t, 2, lineas[0].Cantidad)
	assert.True(t, lineas[0].Costo.Equal(decimal.NewFromInt(50)))
	assert.True(t, lineas[1].Costo.Equal(decimal.RequireFromString("25.5")))
}

// Filas antiguas guardaron el arreglo como string JSON dentro de la columna.
func TestDecodificarLineas_TextoDobleCodificado(t *testing.T) {
	raw := []byte(`"[{\"id\":10,\"cantidad\":2,\"costo\":\"50\"}]"`)

	lineas := entity.DecodificarLineas(raw)
	require.Len(t, lineas, 1)
	assert.Equal(t, 10, lineas[0].ID)
}

func TestDecodificarLineas_MalformadoProduceVacio(t *testing.T) {
	casos := [][]byte{
		nil,
		[]byte(``),
		[]byte(`null`),
		[]byte(`no es json`),
		[]byte(`"tampoco es un arreglo"`),
		[]byte(`{"id":1}`),
	}
	for _, raw := range casos {
		lineas := entity.DecodificarLineas(raw)
		require.NotNil(t, lineas, "payload %q debe producir lista vacía, no nil", raw)
		assert.Empty(t, lineas, "payload %q debe producir lista vacía", raw)
	}
}

func TestCodificarLineas_NuncaEmiteNull(t *testing.T) {
	assert.Equal(t, "[]", string(entity.CodificarLineas(nil)))

	ida := []entity.LineaVenta{{ID: 10, Cantidad: 2, Costo: decimal.NewFromInt(50)}}
	vuelta := entity.DecodificarLineas(entity.CodificarLineas(ida))
	require.Len(t, vuelta, 1)
	assert.Equal(t, ida[0].ID, vuelta[0].ID)
	assert.True(t, ida[0].Costo.Equal(vuelta[0].Costo))
}

func TestVenta_SubtotalYMontoIVA(t *testing.T) {
	v := &entity.Venta{
		Productos: []entity.LineaVenta{
			{ID: 10, Cantidad: 2, Costo: decimal.NewFromInt(50)},
		},
		Servicios: []entity.LineaVenta{
			{ID: 20, Cantidad: 1, Costo: decimal.NewFromInt(30)},
		},
		IVA: decimal.NewFromInt(16),
	}

	assert.True(t, v.Subtotal().Equal(decimal.NewFromInt(130)))
	// 130 * 0.16 = 20.80
	assert.True(t, v.MontoIVA().Equal(decimal.RequireFromString("20.80")),
		"monto IVA esperado 20.80, obtenido %s", v.MontoIVA())
}
