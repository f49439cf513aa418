package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellano/gestion-api/internal/application/ventas"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
	infrafactura "github.com/jcastellano/gestion-api/internal/infrastructure/factura"
	apphttp "github.com/jcastellano/gestion-api/internal/interfaces/http"
	"github.com/jcastellano/gestion-api/pkg/config"
)

type fakeVentaRepo struct{ repository.VentaRepository }

func (fakeVentaRepo) ObtenerPorID(context.Context, int) (*entity.Venta, error) {
	return nil, nil
}

// clienteRepoContador cuenta las búsquedas por cédula para verificar que los
// caminos de error no consultan el catálogo de clientes.
type clienteRepoContador struct {
	repository.ClienteRepository
	llamadas int
}

func (f *clienteRepoContador) ObtenerPorCedula(context.Context, string) (*entity.Cliente, error) {
	f.llamadas++
	return nil, nil
}

func appFactura(clientes *clienteRepoContador) *fiber.App {
	uc := ventas.NewFacturaUseCase(fakeVentaRepo{}, clientes, fakeProductoRepo{}, fakeServicioRepo{})
	h := apphttp.NewFacturaHandler(uc, infrafactura.NewHTMLRenderer(config.NegocioConfig{
		Nombre: "Taller El Progreso",
		NIT:    "900123456-7",
	}), nil)

	app := fiber.New()
	app.Get("/ventas/:id/factura", h.HTML)
	return app
}

func TestFacturaHTML_VentaInexistente_Retorna404HTML(t *testing.T) {
	clientes := &clienteRepoContador{}
	app := appFactura(clientes)

	req := httptest.NewRequest(http.MethodGet, "/ventas/424242/factura", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	cuerpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(cuerpo), "Venta no encontrada")
	assert.Contains(t, string(cuerpo), "<!DOCTYPE html>")

	assert.Zero(t, clientes.llamadas, "sin venta no debe consultarse el cliente")
}

func TestFacturaHTML_IDInvalido_Retorna400HTML(t *testing.T) {
	clientes := &clienteRepoContador{}
	app := appFactura(clientes)

	req := httptest.NewRequest(http.MethodGet, "/ventas/abc/factura", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	cuerpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(cuerpo), "ID de venta inválido")
	assert.Zero(t, clientes.llamadas)
}
