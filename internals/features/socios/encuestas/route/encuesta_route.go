package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "descubrecurico_backend/internals/features/socios/encuestas/controller"
)

// Acceso: /api/s/encuesta
func EncuestaSocioRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEncuestaController(db)

	api.Get("/encuesta", ctl.EnCurso)
	api.Post("/encuesta", ctl.Responder)
}

// Acceso: /api/a/encuestas/:empresa_id
func EncuestaAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEncuestaController(db)

	api.Get("/encuestas/:empresa_id", ctl.PorEmpresa)
}
