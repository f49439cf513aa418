package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellano/gestion-api/internal/domain/entity"
	apphttp "github.com/jcastellano/gestion-api/internal/interfaces/http"
	pkgjwt "github.com/jcastellano/gestion-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "gestion-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequierePermiso para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(requerido entity.Permiso) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequierePermiso(requerido),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"usuario": apphttp.GetUsuario(c),
			})
		},
	)
	return app
}

// tokenConPermisos genera un JWT con los permisos indicados.
func tokenConPermisos(t *testing.T, permisos ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "jperez", "Juan Pérez",
		permisos, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protegida y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequierePermiso
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el permiso requerido → debe pasar (HTTP 200).
func TestRequierePermiso_ConPermisoAccede(t *testing.T) {
	app := buildTestApp(entity.PermisoVentas)
	resp := doRequest(t, app, tokenConPermisos(t, "ventas", "clientes"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"usuario con el permiso de ventas debe poder acceder")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "jperez", body["usuario"])
}

// Caso 2: El usuario no tiene el permiso requerido → HTTP 403 Forbidden.
func TestRequierePermiso_SinPermisoBloqueado(t *testing.T) {
	app := buildTestApp(entity.PermisoUsuarios)
	resp := doRequest(t, app, tokenConPermisos(t, "ventas"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"usuario sin el permiso de usuarios no debe acceder")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No tiene permiso")
}

// Caso 3: Token sin permisos → HTTP 403.
func TestRequierePermiso_TokenSinPermisos_Retorna403(t *testing.T) {
	app := buildTestApp(entity.PermisoVentas)
	resp := doRequest(t, app, tokenConPermisos(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 4: Permisos desconocidos en el token se descartan al armar el conjunto.
func TestRequierePermiso_PermisoDesconocidoDescartado(t *testing.T) {
	app := buildTestApp(entity.PermisoVentas)
	resp := doRequest(t, app, tokenConPermisos(t, "superadmin", "ventas "))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"claims que no son permisos válidos no deben conceder acceso")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.PermisoVentas)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.PermisoVentas)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp(entity.PermisoVentas)
	resp := doRequest(t, app, "Token abcdef")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/yo", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"usuario":  apphttp.GetUsuario(c),
			"nombre":   apphttp.GetNombre(c),
			"permisos": apphttp.GetPermisos(c).Lista(),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/yo", nil)
	req.Header.Set("Authorization", tokenConPermisos(t, "ventas", "clientes"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID   string   `json:"user_id"`
		Usuario  string   `json:"usuario"`
		Nombre   string   `json:"nombre"`
		Permisos []string `json:"permisos"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, "jperez", body.Usuario)
	assert.Equal(t, "Juan Pérez", body.Nombre)
	assert.ElementsMatch(t, []string{"ventas", "clientes"}, body.Permisos)
}
