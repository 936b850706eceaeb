package auth

import (
	"github.com/gofiber/fiber/v2"

	"descubrecurico_backend/internals/constants"
	middlewares "descubrecurico_backend/internals/middlewares"
)

// hasSocioSession dice si la request trae una sesión socio activa
// (canal paralelo al token, fijado en el login por RUT).
func hasSocioSession(c *fiber.Ctx) bool {
	sess, err := middlewares.GetSession(c)
	if err != nil {
		return false
	}
	v, _ := sess.Get(constants.SesEsSocioLogin).(bool)
	return v
}

// SoloAdmin: sin identidad → 401 (equivalente al redirect a login);
// identificado pero sin rol admin → 403; admin → sigue.
func SoloAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)

		if role == constants.RoleAdmin {
			return c.Next()
		}
		if role == "" && !hasSocioSession(c) {
			return fiber.NewError(fiber.StatusUnauthorized, "Debes iniciar sesión")
		}
		return fiber.NewError(fiber.StatusForbidden, "Acceso denegado")
	}
}

// SoloSocio permite socios (token o sesión) y administradores.
func SoloSocio() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)

		if role == constants.RoleAdmin || role == constants.RoleSocio || hasSocioSession(c) {
			return c.Next()
		}
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Debes iniciar sesión")
		}
		return fiber.NewError(fiber.StatusForbidden, "Acceso denegado")
	}
}

// OnlyRoles valida el rol del contexto contra una lista blanca.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		if customMessage == "" {
			customMessage = "Forbidden: you are not authorized to access this resource"
		}
		return fiber.NewError(fiber.StatusForbidden, customMessage)
	}
}
