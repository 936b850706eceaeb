package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "descubrecurico_backend/internals/features/socios/socios/controller"
	middlewares "descubrecurico_backend/internals/middlewares"
)

// Acceso: /api/socios/registro, /api/geo/..., /api/rubros, ...
func SocioPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSocioController(db)

	api.Post("/socios/registro", middlewares.RegisterRateLimiter(), ctl.Registrar)

	geo := api.Group("/geo")
	geo.Get("/regiones", ctl.ListarRegiones)
	geo.Get("/regiones/:id/comunas", ctl.ListarComunasDeRegion)

	api.Get("/rubros", ctl.ListarRubros)
	api.Get("/tipos-comercializacion", ctl.ListarTiposComercializacion)
}

// Acceso: /api/a/socios, /api/a/rubros, ...
func SocioAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSocioController(db)

	api.Post("/rubros", ctl.CrearRubro)
	api.Post("/tipos-comercializacion", ctl.CrearTipoComercializacion)

	socios := api.Group("/socios")
	socios.Get("/", ctl.Listar)
	socios.Get("/:id", ctl.Detalle)
	socios.Delete("/:id", ctl.Eliminar)
}
