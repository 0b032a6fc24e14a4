package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/camilcandy/pos-api/internal/interfaces/http"
)

// buildRouterApp registra el router completo; los casos de uso van en nil
// porque estos tests solo ejercitan los middlewares de las rutas.
func buildRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})
	return app
}

// El alta de usuarios no es pública: sin token debe rechazarse antes de
// llegar al handler.
func TestRouter_RegisterSinToken_Retorna401(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"x@y.mx","password":"supersecreta","name":"X","role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"register sin token no debe poder crear cuentas")
}

// Un vendedor autenticado tampoco puede dar de alta usuarios.
func TestRouter_RegisterConRolVendedor_Retorna403(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"x@y.mx","password":"supersecreta","name":"X","role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "vendedor"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"solo admin puede registrar usuarios")
}

// Login sigue siendo público: la petición llega al handler (400 por cuerpo
// vacío) en lugar de rebotar en el middleware con 401.
func TestRouter_LoginEsPublico(t *testing.T) {
	app := buildRouterApp()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
