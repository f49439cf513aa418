package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellano/gestion-api/internal/application/auditoria"
	"github.com/jcastellano/gestion-api/internal/application/dto"
	"github.com/jcastellano/gestion-api/internal/application/usecase"
	"github.com/jcastellano/gestion-api/internal/domain/entity"
	"github.com/jcastellano/gestion-api/internal/domain/repository"
	apphttp "github.com/jcastellano/gestion-api/internal/interfaces/http"
	"github.com/jcastellano/gestion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes vacíos: repos sin filas, para ejercitar los caminos de no-encontrado.
// Embeben la interfaz; los métodos no sobrescritos harían panic si se llamaran.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteRepo struct{ repository.ClienteRepository }

func (fakeClienteRepo) ObtenerPorID(context.Context, int) (*entity.Cliente, error) {
	return nil, nil
}

type fakeProductoRepo struct{ repository.ProductoRepository }

func (fakeProductoRepo) ObtenerPorID(context.Context, int) (*entity.Producto, error) {
	return nil, nil
}

type fakeServicioRepo struct{ repository.ServicioRepository }

func (fakeServicioRepo) ObtenerPorID(context.Context, int) (*entity.Servicio, error) {
	return nil, nil
}

type fakeProveedorRepo struct{ repository.ProveedorRepository }

func (fakeProveedorRepo) ObtenerPorID(context.Context, int) (*entity.Proveedor, error) {
	return nil, nil
}

type fakeUsuarioRepo struct{ repository.UsuarioRepository }

func (fakeUsuarioRepo) ObtenerPorID(context.Context, string) (*entity.Usuario, error) {
	return nil, nil
}

type fakeCambioRepo struct{ cambios []*entity.Cambio }

func (f *fakeCambioRepo) Crear(_ context.Context, c *entity.Cambio) error {
	f.cambios = append(f.cambios, c)
	return nil
}

func bitacoraPrueba() *auditoria.Registrador {
	return auditoria.NewRegistrador(&fakeCambioRepo{},
		logger.New(logger.Config{Env: "development", Level: "error"}))
}

func decodificarRespuesta(t *testing.T, resp *http.Response) dto.Respuesta {
	t.Helper()
	defer resp.Body.Close()
	var out dto.Respuesta
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /:id con ID inexistente responde 404, nunca 200 con data nula
// ──────────────────────────────────────────────────────────────────────────────

func TestObtenerPorID_Inexistente_Retorna404(t *testing.T) {
	bitacora := bitacoraPrueba()

	casos := []struct {
		nombre   string
		ruta     string
		registro func(app *fiber.App)
		mensaje  string
	}{
		{
			nombre: "cliente",
			ruta:   "/clientes/99",
			registro: func(app *fiber.App) {
				h := apphttp.NewClienteHandler(usecase.NewClienteUseCase(fakeClienteRepo{}, bitacora))
				app.Get("/clientes/:id", h.ObtenerPorID)
			},
			mensaje: "Cliente no encontrado",
		},
		{
			nombre: "producto",
			ruta:   "/productos/99",
			registro: func(app *fiber.App) {
				h := apphttp.NewProductoHandler(usecase.NewProductoUseCase(fakeProductoRepo{}, bitacora))
				app.Get("/productos/:id", h.ObtenerPorID)
			},
			mensaje: "Producto no encontrado",
		},
		{
			nombre: "servicio",
			ruta:   "/servicios/99",
			registro: func(app *fiber.App) {
				h := apphttp.NewServicioHandler(usecase.NewServicioUseCase(fakeServicioRepo{}, bitacora))
				app.Get("/servicios/:id", h.ObtenerPorID)
			},
			mensaje: "Servicio no encontrado",
		},
		{
			nombre: "proveedor",
			ruta:   "/proveedores/99",
			registro: func(app *fiber.App) {
				h := apphttp.NewProveedorHandler(usecase.NewProveedorUseCase(fakeProveedorRepo{}, bitacora))
				app.Get("/proveedores/:id", h.ObtenerPorID)
			},
			mensaje: "Proveedor no encontrado",
		},
		{
			nombre: "usuario",
			ruta:   "/usuarios/99",
			registro: func(app *fiber.App) {
				h := apphttp.NewUsuarioHandler(usecase.NewUsuarioUseCase(fakeUsuarioRepo{}, bitacora))
				app.Get("/usuarios/:id", h.ObtenerPorID)
			},
			mensaje: "Usuario no encontrado",
		},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			app := fiber.New()
			caso.registro(app)

			req := httptest.NewRequest(http.MethodGet, caso.ruta, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
			out := decodificarRespuesta(t, resp)
			assert.False(t, out.Success)
			assert.Equal(t, caso.mensaje, out.Message)
			assert.Nil(t, out.Data)
		})
	}
}
