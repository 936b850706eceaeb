package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "descubrecurico_backend/internals/features/socios/empresas/controller"
)

// Acceso: /api/empresas (directorio), /api/pagos/notification (webhook)
func EmpresaPublicRoutes(api fiber.Router, db *gorm.DB) {
	empresaCtl := controller.NewEmpresaController(db)
	pagoCtl := controller.NewPagoController(db)

	api.Get("/empresas", empresaCtl.Directorio)
	api.Post("/pagos/notification", pagoCtl.Notificacion)
}

// Acceso: /api/s/empresas/... (socio o admin)
func EmpresaSocioRoutes(api fiber.Router, db *gorm.DB) {
	empresaCtl := controller.NewEmpresaController(db)
	pagoCtl := controller.NewPagoController(db)

	empresas := api.Group("/empresas")
	empresas.Post("/", empresaCtl.Crear)
	empresas.Post("/:id/foto", empresaCtl.SubirFoto)
	empresas.Post("/:id/pagar", pagoCtl.CrearPago)
}

// Acceso: /api/a/empresas/...
func EmpresaAdminRoutes(api fiber.Router, db *gorm.DB) {
	empresaCtl := controller.NewEmpresaController(db)

	empresas := api.Group("/empresas")
	empresas.Get("/", empresaCtl.Listar)
	empresas.Get("/:id", empresaCtl.Detalle)
	empresas.Put("/:id", empresaCtl.Actualizar)
	empresas.Patch("/:id/solicitud", empresaCtl.CambiarSolicitud)
	empresas.Patch("/:id/pago", empresaCtl.CambiarPago)
	empresas.Patch("/:id/activo", empresaCtl.CambiarActivo)
	empresas.Delete("/:id", empresaCtl.Eliminar)
}
