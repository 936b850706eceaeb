package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"descubrecurico_backend/internals/constants"
	middlewares "descubrecurico_backend/internals/middlewares"
)

// conRol simula el paso previo del AuthMiddleware: deja el rol en Locals.
func conRol(rol string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rol != "" {
			c.Locals("userRole", rol)
		}
		return c.Next()
	}
}

func ok(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

func appConGates(rol string) *fiber.App {
	app := fiber.New()
	app.Get("/admin", conRol(rol), SoloAdmin(), ok)
	app.Get("/socio", conRol(rol), SoloSocio(), ok)
	// Deja la sesión como la deja el login por RUT.
	app.Post("/login-rut", func(c *fiber.Ctx) error {
		sess, err := middlewares.GetSession(c)
		if err != nil {
			return err
		}
		sess.Set(constants.SesEsSocioLogin, true)
		sess.Set(constants.SesSocioID, 7)
		return sess.Save()
	})
	return app
}

func TestGatesSinIdentidad(t *testing.T) {
	app := appConGates("")

	for _, ruta := range []string{"/admin", "/socio"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, ruta, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, ruta)
	}
}

func TestGatesConRolAdmin(t *testing.T) {
	app := appConGates(constants.RoleAdmin)

	for _, ruta := range []string{"/admin", "/socio"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, ruta, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, ruta)
	}
}

func TestGatesConRolSocio(t *testing.T) {
	app := appConGates(constants.RoleSocio)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/socio", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Identificado pero sin permiso: prohibido, no "inicia sesión".
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGatesStaffSinRolAsignado(t *testing.T) {
	app := appConGates("sin_rol")

	for _, ruta := range []string{"/admin", "/socio"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, ruta, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, ruta)
	}
}

// La sesión de socio por RUT es un canal paralelo al token: abre /socio
// pero jamás /admin.
func TestGatesConSesionSocio(t *testing.T) {
	app := appConGates("")

	login, err := app.Test(httptest.NewRequest(http.MethodPost, "/login-rut", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, login.StatusCode)
	require.NotEmpty(t, login.Cookies())

	conCookie := func(ruta string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, ruta, nil)
		for _, ck := range login.Cookies() {
			req.AddCookie(ck)
		}
		return req
	}

	resp, err := app.Test(conCookie("/socio"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(conCookie("/admin"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
