package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "descubrecurico_backend/internals/features/contenido/eventos/controller"
)

// Acceso: /api/eventos/...
func EventoPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEventoController(db)

	eventos := api.Group("/eventos")
	eventos.Get("/", ctl.Listar)
	eventos.Get("/:tipo/:slug", ctl.Detalle)
}

// Acceso: /api/a/eventos/...
func EventoAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEventoController(db)

	eventos := api.Group("/eventos")
	eventos.Post("/:tipo", ctl.Crear)
	eventos.Put("/:tipo/:id", ctl.Actualizar)
	eventos.Delete("/:tipo/:id", ctl.Eliminar)
}
