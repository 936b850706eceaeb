package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "descubrecurico_backend/internals/features/dashboard/controller"
)

// Acceso: /api/contacto
func DashboardPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)
	api.Post("/contacto", ctl.CrearMensaje)
}

// Acceso: /api/s/dashboard
func DashboardSocioRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)
	api.Get("/dashboard", ctl.ResumenSocio)
}

// Acceso: /api/a/dashboard, /api/a/mensajes
func DashboardAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)
	api.Get("/dashboard", ctl.ResumenAdmin)
	api.Get("/mensajes", ctl.ListarMensajes)
	api.Patch("/mensajes/:id/leido", ctl.MarcarLeido)
}
