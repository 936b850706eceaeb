package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ArticuloRoutes "descubrecurico_backend/internals/features/contenido/articulos/route"
	EventoRoutes "descubrecurico_backend/internals/features/contenido/eventos/route"
	DashboardRoutes "descubrecurico_backend/internals/features/dashboard/route"
	EmpresaRoutes "descubrecurico_backend/internals/features/socios/empresas/route"
	EncuestaRoutes "descubrecurico_backend/internals/features/socios/encuestas/route"
	SocioRoutes "descubrecurico_backend/internals/features/socios/socios/route"
	AuthRoutes "descubrecurico_backend/internals/features/users/auth/route"
	authMiddleware "descubrecurico_backend/internals/middlewares/auth"
)

// SetupRoutes arma las tres superficies:
//   /api    público (lectura de contenido, directorio, registro, webhook)
//   /api/s  socio o admin (empresas propias, encuesta, panel socio)
//   /api/a  solo admin
//
// En /s y /a la identidad se resuelve con OptionalAuthMiddleware: así el
// gate por rol decide entre 401 (sin identidad) y 403 (identidad sin rol).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ---- público
	AuthRoutes.AuthRoutes(api, db)
	ArticuloRoutes.ArticuloPublicRoutes(api, db)
	EventoRoutes.EventoPublicRoutes(api, db)
	SocioRoutes.SocioPublicRoutes(api, db)
	EmpresaRoutes.EmpresaPublicRoutes(api, db)
	DashboardRoutes.DashboardPublicRoutes(api, db)

	// ---- socio (o admin)
	socio := api.Group("/s",
		authMiddleware.OptionalAuthMiddleware(db),
		authMiddleware.SoloSocio(),
	)
	EmpresaRoutes.EmpresaSocioRoutes(socio, db)
	EncuestaRoutes.EncuestaSocioRoutes(socio, db)
	DashboardRoutes.DashboardSocioRoutes(socio, db)

	// ---- admin
	admin := api.Group("/a",
		authMiddleware.OptionalAuthMiddleware(db),
		authMiddleware.SoloAdmin(),
	)
	AuthRoutes.AuthAdminRoutes(admin, db)
	ArticuloRoutes.ArticuloAdminRoutes(admin, db)
	EventoRoutes.EventoAdminRoutes(admin, db)
	SocioRoutes.SocioAdminRoutes(admin, db)
	EmpresaRoutes.EmpresaAdminRoutes(admin, db)
	EncuestaRoutes.EncuestaAdminRoutes(admin, db)
	DashboardRoutes.DashboardAdminRoutes(admin, db)
}
