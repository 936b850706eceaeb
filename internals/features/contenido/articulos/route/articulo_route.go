package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "descubrecurico_backend/internals/features/contenido/articulos/controller"
)

// ArticuloPublicRoutes: lectura pública + comentarios.
// Acceso: /api/contenido/...
func ArticuloPublicRoutes(api fiber.Router, db *gorm.DB) {
	articuloCtl := controller.NewArticuloController(db)
	comentarioCtl := controller.NewComentarioController(db)

	contenido := api.Group("/contenido")
	contenido.Get("/", articuloCtl.Listar)
	contenido.Get("/categorias", articuloCtl.ListarCategorias)
	contenido.Get("/:tipo/:slug", articuloCtl.Detalle)
	contenido.Post("/:tipo/:id/comentarios", comentarioCtl.Crear)
}

// ArticuloAdminRoutes: CRUD y uploads, solo admin.
// Acceso: /api/a/contenido/...
func ArticuloAdminRoutes(api fiber.Router, db *gorm.DB) {
	articuloCtl := controller.NewArticuloController(db)
	comentarioCtl := controller.NewComentarioController(db)

	contenido := api.Group("/contenido")
	contenido.Post("/:tipo", articuloCtl.Crear)
	contenido.Put("/:tipo/:id", articuloCtl.Actualizar)
	contenido.Delete("/comentarios/:id", comentarioCtl.Eliminar)
	contenido.Delete("/:tipo/:id", articuloCtl.Eliminar)
	contenido.Post("/:tipo/bloques/imagen", articuloCtl.SubirImagenBloque)
	contenido.Post("/:tipo/:id/portada", articuloCtl.SubirPortada)
}
